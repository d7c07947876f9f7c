//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/email"
	"github.com/ecodeclub/mooc/internal/email/noop"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/ecodeclub/mooc/internal/user"
	"github.com/google/wire"
)

func initEmailService() email.Service {
	return noop.NewService()
}

func InitModule() (*user.Module, error) {
	wire.Build(testioc.BaseSet, initEmailService, user.InitModule)
	return new(user.Module), nil
}
