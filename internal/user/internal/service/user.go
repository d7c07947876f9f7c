// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mooc/internal/user/internal/domain"
	"github.com/ecodeclub/mooc/internal/user/internal/event"
	"github.com/ecodeclub/mooc/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate = repository.ErrUserDuplicate
	// ErrInvalidEmailOrPassword 不区分是邮箱还是密码错了，避免撞库
	ErrInvalidEmailOrPassword = errors.New("邮箱或者密码不正确")
	ErrUserNotActivated       = errors.New("邮箱尚未激活")
	ErrUserNotFound           = errors.New("用户不存在")
)

type UserService interface {
	// SignUp 注册之后处于未激活状态，激活码发到注册邮箱
	SignUp(ctx context.Context, email, password string) (int64, error)
	Activate(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (domain.User, error)

	Profile(ctx context.Context, id int64) (domain.User, error)
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据，邮箱、密码、序列号不从这里走
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error

	ChangePassword(ctx context.Context, uid int64, oldPassword, newPassword string) error
	SendPasswordResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error

	SendEmailChangeCode(ctx context.Context, newEmail string) error
	ChangeEmail(ctx context.Context, uid int64, newEmail, code string) error
}

type userService struct {
	repo     repository.UserRepository
	codeSvc  VerificationCodeService
	producer *event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository,
	codeSvc VerificationCodeService,
	p *event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		codeSvc:  codeSvc,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) SignUp(ctx context.Context, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	id, err := svc.repo.Create(ctx, domain.User{
		SN:       shortuuid.New(),
		Email:    email,
		Password: string(hash),
		Nickname: email,
		Active:   false,
	})
	if err != nil {
		return 0, err
	}
	if err := svc.codeSvc.Send(ctx, BizRegister, email); err != nil {
		return 0, err
	}
	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id, Email: email, Nickname: email}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return id, nil
}

func (svc *userService) Activate(ctx context.Context, email, code string) error {
	if err := svc.codeSvc.Verify(ctx, BizRegister, email, code); err != nil {
		return err
	}
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return svc.repo.Activate(ctx, u.Id)
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidEmailOrPassword
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidEmailOrPassword
	}
	if !u.Active {
		return domain.User{}, ErrUserNotActivated
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	// 在系统内部，基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和邮箱
	user.SN = ""
	user.Email = ""
	user.Password = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) ChangePassword(ctx context.Context, uid int64, oldPassword, newPassword string) error {
	u, err := svc.repo.FindById(ctx, uid)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidEmailOrPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.repo.UpdatePassword(ctx, uid, string(hash))
}

func (svc *userService) SendPasswordResetCode(ctx context.Context, email string) error {
	if _, err := svc.repo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return svc.codeSvc.Send(ctx, BizResetPwd, email)
}

func (svc *userService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := svc.codeSvc.Verify(ctx, BizResetPwd, email, code); err != nil {
		return err
	}
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.repo.UpdatePassword(ctx, u.Id, string(hash))
}

func (svc *userService) SendEmailChangeCode(ctx context.Context, newEmail string) error {
	// 验证码发给新邮箱，证明新邮箱真的是这个人的
	return svc.codeSvc.Send(ctx, BizChangeEmail, newEmail)
}

func (svc *userService) ChangeEmail(ctx context.Context, uid int64, newEmail, code string) error {
	if err := svc.codeSvc.Verify(ctx, BizChangeEmail, newEmail, code); err != nil {
		return err
	}
	return svc.repo.UpdateEmail(ctx, uid, newEmail)
}
