package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/comment"
	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/engagement"
	"github.com/ecodeclub/mooc/internal/marketing"
	"github.com/ecodeclub/mooc/internal/message"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	"github.com/ecodeclub/mooc/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	mktHdl *marketing.Handler,
	courseHdl *course.Handler,
	orgHdl *organization.Handler,
	teacherHdl *teacher.Handler,
	engHdl *engagement.Handler,
	commentHdl *comment.Handler,
	userHdl *user.Handler,
	msgHdl *message.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	mktHdl.PublicRoutes(res.Engine)
	courseHdl.PublicRoutes(res.Engine)
	orgHdl.PublicRoutes(res.Engine)
	teacherHdl.PublicRoutes(res.Engine)
	engHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	userHdl.PublicRoutes(res.Engine)
	msgHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	mktHdl.PrivateRoutes(res.Engine)
	courseHdl.PrivateRoutes(res.Engine)
	orgHdl.PrivateRoutes(res.Engine)
	teacherHdl.PrivateRoutes(res.Engine)
	engHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	userHdl.PrivateRoutes(res.Engine)
	msgHdl.PrivateRoutes(res.Engine)
	return res
}
