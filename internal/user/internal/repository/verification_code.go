package repository

import (
	"context"

	"github.com/ecodeclub/mooc/internal/user/internal/repository/cache"
)

var ErrCodeNotFound = cache.ErrKeyNotFound

type VerificationCodeRepository interface {
	SetCode(ctx context.Context, biz, email, code string) error
	GetCode(ctx context.Context, biz, email string) (string, error)
	DelCode(ctx context.Context, biz, email string) error
}

type verificationCodeRepository struct {
	cache cache.VerificationCodeCache
}

func NewVerificationCodeRepository(c cache.VerificationCodeCache) VerificationCodeRepository {
	return &verificationCodeRepository{cache: c}
}

func (repo *verificationCodeRepository) SetCode(ctx context.Context, biz, email, code string) error {
	return repo.cache.SetCode(ctx, biz, email, code)
}

func (repo *verificationCodeRepository) GetCode(ctx context.Context, biz, email string) (string, error) {
	return repo.cache.GetCode(ctx, biz, email)
}

func (repo *verificationCodeRepository) DelCode(ctx context.Context, biz, email string) error {
	return repo.cache.DelCode(ctx, biz, email)
}
