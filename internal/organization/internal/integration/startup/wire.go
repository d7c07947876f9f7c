//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/organization"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*organization.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ,
		engagement.InitModule,
		organization.InitModule)
	return new(organization.Module), nil
}
