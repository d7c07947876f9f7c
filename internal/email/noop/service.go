package noop

import (
	"context"

	"github.com/ecodeclub/mooc/internal/email"
)

// Service 测试环境用，不真的发邮件
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) SendMail(_ context.Context, _ email.Mail) error {
	return nil
}
