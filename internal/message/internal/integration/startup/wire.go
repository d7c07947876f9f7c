//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mooc/internal/message"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*message.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ,
		message.InitModule)
	return new(message.Module), nil
}
