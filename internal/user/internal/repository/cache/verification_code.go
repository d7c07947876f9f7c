package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrKeyNotFound = errors.New("key not found")

type VerificationCodeCache interface {
	SetCode(ctx context.Context, biz, email, code string) error
	GetCode(ctx context.Context, biz, email string) (string, error)
	DelCode(ctx context.Context, biz, email string) error
}

type verificationCodeCache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewVerificationCodeCache 注意缓存前缀
func NewVerificationCodeCache(c ecache.Cache) VerificationCodeCache {
	return &verificationCodeCache{
		cache: &ecache.NamespaceCache{
			Namespace: "email-code:",
			C:         c,
		},
		// 默认十五分钟
		expiration: time.Minute * 15,
	}
}

func (s *verificationCodeCache) SetCode(ctx context.Context, biz, email, code string) error {
	return s.cache.Set(ctx, s.key(biz, email), code, s.expiration)
}

func (s *verificationCodeCache) GetCode(ctx context.Context, biz, email string) (string, error) {
	val := s.cache.Get(ctx, s.key(biz, email))
	if val.Err != nil {
		return "", val.Err
	}
	if val.KeyNotFound() {
		return "", ErrKeyNotFound
	}
	return val.Val.(string), nil
}

func (s *verificationCodeCache) DelCode(ctx context.Context, biz, email string) error {
	_, err := s.cache.Delete(ctx, s.key(biz, email))
	return err
}

func (s *verificationCodeCache) key(biz, email string) string {
	return fmt.Sprintf("%s:%s", biz, email)
}
