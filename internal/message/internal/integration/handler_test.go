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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/message/internal/events"
	"github.com/ecodeclub/mooc/internal/message/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/message/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/message/internal/web"
	"github.com/ecodeclub/mooc/internal/test"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 1234

type MessageTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	mq     mq.MQ
}

func (s *MessageTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
}

func (s *MessageTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `user_messages`").Error
	require.NoError(s.T(), err)
}

func (s *MessageTestSuite) list(t *testing.T, page int) *test.JSONResponseRecorder[web.ListResp] {
	req, err := http.NewRequest(http.MethodPost,
		"/messages/list", iox.NewJSONReader(web.ListReq{Page: page}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *MessageTestSuite) unreadCount(t *testing.T) int64 {
	req, err := http.NewRequest(http.MethodPost, "/messages/unread-count", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.UnreadCountResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data.Count
}

func (s *MessageTestSuite) TestWelcomeOnRegistration() {
	t := s.T()
	producer, err := s.mq.Producer("user_registration_events")
	require.NoError(t, err)
	evt := events.RegistrationEvent{
		Uid:      uid,
		Email:    "tom@example.com",
		Nickname: "tom@example.com",
	}
	body, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: body})
	require.NoError(t, err)

	// 消费是异步的，等欢迎消息落库
	require.Eventually(t, func() bool {
		var cnt int64
		err := s.db.Model(&dao.UserMessage{}).Where("uid = ?", uid).Count(&cnt).Error
		return err == nil && cnt == 1
	}, 3*time.Second, 100*time.Millisecond)

	var msg dao.UserMessage
	require.NoError(t, s.db.Where("uid = ?", uid).First(&msg).Error)
	assert.Equal(t, "欢迎注册，激活邮箱之后就可以开始学习了", msg.Content)
	assert.False(t, msg.HasRead)
	assert.Equal(t, int64(1), s.unreadCount(t))
}

func (s *MessageTestSuite) TestList() {
	t := s.T()
	// 9 条个人消息加 2 条全员公告，别人的消息不算
	for i := 1; i <= 9; i++ {
		require.NoError(t, s.db.Create(&dao.UserMessage{
			Uid:     uid,
			Content: fmt.Sprintf("第 %d 条消息", i),
			Ctime:   int64(i * 1000),
		}).Error)
	}
	require.NoError(t, s.db.Create(&dao.UserMessage{
		Uid:     0,
		Content: "今晚十点停机维护",
		Ctime:   10000,
	}).Error)
	require.NoError(t, s.db.Create(&dao.UserMessage{
		Uid:     0,
		Content: "新版本上线了",
		Ctime:   11000,
	}).Error)
	require.NoError(t, s.db.Create(&dao.UserMessage{
		Uid:     5678,
		Content: "别人的消息",
		Ctime:   12000,
	}).Error)

	assert.Equal(t, int64(9), s.unreadCount(t))

	recorder := s.list(t, 1)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, int64(11), resp.Total)
	assert.Equal(t, 2, resp.Pages)
	require.Len(t, resp.List, 8)
	assert.Equal(t, "新版本上线了", resp.List[0].Content)
	assert.True(t, resp.List[0].Broadcast)
	assert.Equal(t, "今晚十点停机维护", resp.List[1].Content)
	assert.Equal(t, "第 9 条消息", resp.List[2].Content)
	assert.False(t, resp.List[2].Broadcast)

	// 翻过的这一页里自己的消息标成已读，还剩第二页的 3 条
	assert.Equal(t, int64(3), s.unreadCount(t))

	recorder = s.list(t, 2)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	require.Len(t, resp.List, 3)
	assert.Equal(t, "第 3 条消息", resp.List[0].Content)
	assert.Equal(t, "第 1 条消息", resp.List[2].Content)
	assert.Equal(t, int64(0), s.unreadCount(t))

	// 再看一遍第一页，已读状态带出来了
	recorder = s.list(t, 1)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	assert.True(t, resp.List[2].HasRead)
	// 公告没有按人的已读状态
	assert.False(t, resp.List[0].HasRead)
}

func (s *MessageTestSuite) TestList_PageOutOfRange() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.UserMessage{Uid: uid, Content: "只有一条"}).Error)
	recorder := s.list(t, 4)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.ListResp]{Code: 507002, Msg: "页码超出范围"}, recorder.MustScan())
}

func TestMessageHandler(t *testing.T) {
	suite.Run(t, new(MessageTestSuite))
}
