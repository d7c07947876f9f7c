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
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/comment/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/comment/internal/web"
	"github.com/ecodeclub/mooc/internal/test"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 1234

type CommentTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *CommentTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	handler := module.Hdl
	handler.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	handler.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	// 发评论前会查课程在不在，这里只需要主键列
	err = s.db.Exec("CREATE TABLE IF NOT EXISTS `courses` (`id` BIGINT AUTO_INCREMENT PRIMARY KEY)").Error
	require.NoError(s.T(), err)
}

func (s *CommentTestSuite) TearDownTest() {
	for _, table := range []string{"comments", "users", "courses"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *CommentTestSuite) seedCourse(t *testing.T, id int64) {
	err := s.db.Exec("INSERT INTO `courses` (`id`) VALUES (?)", id).Error
	require.NoError(t, err)
}

// seedUser 评论列表会去 user 模块拿昵称和头像，这里直接写表
func (s *CommentTestSuite) seedUser(t *testing.T, id int64, nickname string) {
	err := s.db.Exec("INSERT INTO `users` (`id`, `sn`, `nickname`, `avatar`, `active`, `ctime`, `utime`) VALUES (?, ?, ?, ?, 1, 0, 0)",
		id, fmt.Sprintf("sn-%d", id), nickname, fmt.Sprintf("https://cdn.example.com/avatar/%d.png", id)).Error
	require.NoError(t, err)
}

func (s *CommentTestSuite) TestCreate() {
	t := s.T()
	s.seedCourse(t, 1)
	req, err := http.NewRequest(http.MethodPost,
		"/comments/create", iox.NewJSONReader(map[string]any{
			"courseId": int64(1),
			"content":  "  讲得很透彻，醍醐灌顶  ",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)

	var c dao.Comment
	err = s.db.Where("id = ?", id).First(&c).Error
	require.NoError(t, err)
	assert.Equal(t, int64(uid), c.Uid)
	assert.Equal(t, int64(1), c.CourseId)
	// 首尾空白被去掉了
	assert.Equal(t, "讲得很透彻，醍醐灌顶", c.Content)
	assert.True(t, c.Ctime > 0)
}

func (s *CommentTestSuite) TestCreate_Failed() {
	testcases := []struct {
		name    string
		content string
	}{
		{
			name:    "全是空白",
			content: "   \n\t  ",
		},
		{
			name:    "超出长度上限",
			content: strings.Repeat("好", 301),
		},
	}
	for _, tc := range testcases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/comments/create", iox.NewJSONReader(map[string]any{
					"courseId": int64(1),
					"content":  tc.content,
				}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 500, recorder.Code)
			assert.Equal(t, test.Result[int64]{Code: 506002, Msg: "评论内容为空或者超长"}, recorder.MustScan())
		})
	}
}

func (s *CommentTestSuite) TestCreate_CourseNotFound() {
	t := s.T()
	// 课程不存在，不能留下评论
	req, err := http.NewRequest(http.MethodPost,
		"/comments/create", iox.NewJSONReader(map[string]any{
			"courseId": int64(999),
			"content":  "课没了还能评论吗",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[int64]{Code: 506004, Msg: "课程不存在"}, recorder.MustScan())

	var cnt int64
	err = s.db.Model(&dao.Comment{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *CommentTestSuite) TestList() {
	t := s.T()
	s.seedUser(t, 1, "阿强")
	s.seedUser(t, 2, "阿珍")
	// 7 条评论，两个人轮流发
	for i := 1; i <= 7; i++ {
		err := s.db.Create(&dao.Comment{
			Uid:      int64(i%2 + 1),
			CourseId: 1,
			Content:  fmt.Sprintf("第 %d 条评论", i),
			Ctime:    int64(i * 1000),
		}).Error
		require.NoError(t, err)
	}
	// 别的课程的评论不应该混进来
	err := s.db.Create(&dao.Comment{
		Uid:      1,
		CourseId: 2,
		Content:  "别的课程",
		Ctime:    8000,
	}).Error
	require.NoError(t, err)

	list := func(page int) *test.JSONResponseRecorder[web.ListResp] {
		req, err := http.NewRequest(http.MethodPost,
			"/comments/list", iox.NewJSONReader(map[string]any{
				"courseId": int64(1),
				"page":     page,
			}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[web.ListResp]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	recorder := list(1)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, 2, resp.Pages)
	require.Len(t, resp.List, 5)
	// 新评论在前
	assert.Equal(t, "第 7 条评论", resp.List[0].Content)
	assert.Equal(t, "第 3 条评论", resp.List[4].Content)
	// 带上了作者信息
	assert.Equal(t, "阿珍", resp.List[0].User.Nickname)
	assert.Equal(t, "https://cdn.example.com/avatar/2.png", resp.List[0].User.Avatar)
	assert.Equal(t, "阿强", resp.List[1].User.Nickname)

	recorder = list(2)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	require.Len(t, resp.List, 2)
	assert.Equal(t, "第 2 条评论", resp.List[0].Content)
	assert.Equal(t, "第 1 条评论", resp.List[1].Content)

	recorder = list(3)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.ListResp]{Code: 506003, Msg: "页码超出范围"}, recorder.MustScan())
}

func (s *CommentTestSuite) TestList_Empty() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/comments/list", iox.NewJSONReader(map[string]any{
			"courseId": int64(999),
			"page":     1,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, 0, resp.Pages)
	assert.Empty(t, resp.List)
}

func TestCommentHandler(t *testing.T) {
	suite.Run(t, new(CommentTestSuite))
}
