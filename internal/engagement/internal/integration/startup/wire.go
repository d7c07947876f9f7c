//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/engagement"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*engagement.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ, engagement.InitModule)
	return new(engagement.Module), nil
}
