package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mooc/internal/user/internal/domain"
	"github.com/ecodeclub/mooc/internal/user/internal/repository/cache"
	"github.com/ecodeclub/mooc/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	Activate(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, dao.User{
		SN: u.SN,
		Email: sql.NullString{
			String: u.Email,
			Valid:  u.Email != "",
		},
		Password: u.Password,
		Nickname: u.Nickname,
		Active:   u.Active,
	})
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, dao.User{
		Id:       u.Id,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Birthday: u.Birthday,
		Gender:   u.Gender,
		Address:  u.Address,
		Phone:    u.Phone,
	})
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(_ int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), err
}

func (ur *CachedUserRepository) Activate(ctx context.Context, id int64) error {
	if err := ur.dao.Activate(ctx, id); err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ur.dao.UpdatePassword(ctx, id, password)
}

func (ur *CachedUserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	if err := ur.dao.UpdateEmail(ctx, id, email); err != nil {
		if errors.Is(err, dao.ErrUserDuplicate) {
			return ErrUserDuplicate
		}
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		SN:       ue.SN,
		Email:    ue.Email.String,
		Password: ue.Password,
		Nickname: ue.Nickname,
		Avatar:   ue.Avatar,
		Birthday: ue.Birthday,
		Gender:   ue.Gender,
		Address:  ue.Address,
		Phone:    ue.Phone,
		Active:   ue.Active,
		Ctime:    ue.Ctime,
	}
}
