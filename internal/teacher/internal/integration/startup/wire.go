//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*teacher.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ,
		engagement.InitModule,
		organization.InitModule,
		teacher.InitModule)
	return new(teacher.Module), nil
}
