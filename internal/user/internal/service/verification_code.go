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
	"fmt"

	"github.com/ecodeclub/mooc/internal/email"
	"github.com/ecodeclub/mooc/internal/user/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

var ErrInvalidCode = errors.New("验证码不正确或者已过期")

const (
	BizRegister    = "register"
	BizResetPwd    = "reset-password"
	BizChangeEmail = "change-email"
)

type codeTemplate struct {
	length  int
	subject string
	body    string
}

// 修改邮箱的验证码要手抄进输入框，所以短一点
var templates = map[string]codeTemplate{
	BizRegister: {
		length:  16,
		subject: "注册激活",
		body:    "感谢注册，你的激活码是 %s，十五分钟内有效",
	},
	BizResetPwd: {
		length:  16,
		subject: "找回密码",
		body:    "你正在找回密码，验证码是 %s，十五分钟内有效。不是你本人操作的话请忽略",
	},
	BizChangeEmail: {
		length:  4,
		subject: "修改邮箱",
		body:    "你正在修改绑定邮箱，验证码是 %s，十五分钟内有效",
	},
}

type VerificationCodeService interface {
	// Send 生成、缓存并发送验证码
	Send(ctx context.Context, biz, to string) error
	// Verify 一次性校验，成功之后验证码立刻作废
	Verify(ctx context.Context, biz, email, code string) error
}

type verificationCodeService struct {
	repo     repository.VerificationCodeRepository
	emailSvc email.Service
}

func NewVerificationCodeService(repo repository.VerificationCodeRepository,
	emailSvc email.Service) VerificationCodeService {
	return &verificationCodeService{
		repo:     repo,
		emailSvc: emailSvc,
	}
}

func (s *verificationCodeService) Send(ctx context.Context, biz, to string) error {
	tpl, ok := templates[biz]
	if !ok {
		return fmt.Errorf("不认识的验证码业务 %q", biz)
	}
	code := shortuuid.New()[:tpl.length]
	if err := s.repo.SetCode(ctx, biz, to, code); err != nil {
		return err
	}
	return s.emailSvc.SendMail(ctx, email.Mail{
		To:      to,
		Subject: tpl.subject,
		Body:    []byte(fmt.Sprintf(tpl.body, code)),
	})
}

func (s *verificationCodeService) Verify(ctx context.Context, biz, em, code string) error {
	cached, err := s.repo.GetCode(ctx, biz, em)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return ErrInvalidCode
		}
		return err
	}
	if cached != code {
		return ErrInvalidCode
	}
	return s.repo.DelCode(ctx, biz, em)
}
