//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mooc/internal/comment"
	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/marketing"
	"github.com/ecodeclub/mooc/internal/message"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	"github.com/ecodeclub/mooc/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		engagement.InitModule,
		wire.FieldsOf(new(*engagement.Module), "Hdl"),
		organization.InitModule,
		wire.FieldsOf(new(*organization.Module), "Hdl"),
		teacher.InitModule,
		wire.FieldsOf(new(*teacher.Module), "Hdl"),
		course.InitModule,
		wire.FieldsOf(new(*course.Module), "Hdl"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		comment.InitModule,
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		message.InitModule,
		wire.FieldsOf(new(*message.Module), "Hdl"),
		marketing.InitModule,
		wire.FieldsOf(new(*marketing.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
