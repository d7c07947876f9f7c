//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/marketing"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*marketing.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ,
		engagement.InitModule,
		organization.InitModule,
		teacher.InitModule,
		course.InitModule,
		marketing.InitModule)
	return new(marketing.Module), nil
}
