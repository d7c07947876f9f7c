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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/teacher/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/teacher/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/teacher/internal/web"
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

type TeacherTestSuite struct {
	suite.Suite
	server     *egin.Component
	authServer *egin.Component
	db         *egorm.Component
}

func (s *TeacherTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	handler := module.Hdl

	server := egin.Load("server").Build()
	handler.PublicRoutes(server.Engine)
	s.server = server

	authServer := egin.Load("server").Build()
	authServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	handler.PublicRoutes(authServer.Engine)
	s.authServer = authServer

	s.db = testioc.InitDB()
}

func (s *TeacherTestSuite) TearDownTest() {
	for _, table := range []string{"teachers", "course_orgs", "cities", "favorites"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *TeacherTestSuite) seedOrg(t *testing.T, id int64, name string) {
	err := s.db.Exec("INSERT INTO `course_orgs` (`id`, `name`, `ctime`, `utime`) VALUES (?, ?, 0, 0)",
		id, name).Error
	require.NoError(t, err)
}

func (s *TeacherTestSuite) list(t *testing.T, req web.ListReq) *test.JSONResponseRecorder[web.ListResp] {
	request, err := http.NewRequest(http.MethodPost,
		"/teachers/list", iox.NewJSONReader(req))
	request.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, request)
	return recorder
}

func (s *TeacherTestSuite) TestList() {
	t := s.T()
	s.seedOrg(t, 1, "极客学院")
	for i := 1; i <= 6; i++ {
		require.NoError(t, s.db.Create(&dao.Teacher{
			OrgId:        1,
			Name:         fmt.Sprintf("王老师 %d", i),
			WorkCompany:  "字节跳动",
			WorkPosition: "资深工程师",
			FavCnt:       i,
			ClickCnt:     (7 - i) * 10,
			Ctime:        int64(i * 1000),
		}).Error)
	}
	require.NoError(t, s.db.Create(&dao.Teacher{
		Name:         "李老师",
		WorkCompany:  "自由职业",
		WorkPosition: "独立顾问",
		FavCnt:       0,
		ClickCnt:     100,
		Ctime:        8000,
	}).Error)

	testcases := []struct {
		name      string
		req       web.ListReq
		wantTotal int64
		wantPages int
		wantNames []string
	}{
		{
			name:      "默认按最新排序",
			req:       web.ListReq{Page: 1},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"李老师", "王老师 6", "王老师 5", "王老师 4", "王老师 3"},
		},
		{
			name:      "第二页",
			req:       web.ListReq{Page: 2},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"王老师 2", "王老师 1"},
		},
		{
			name:      "按收藏数排序",
			req:       web.ListReq{Sort: "fav", Page: 1},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"王老师 6", "王老师 5", "王老师 4", "王老师 3", "王老师 2"},
		},
		{
			name:      "按点击数排序",
			req:       web.ListReq{Sort: "click", Page: 1},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"李老师", "王老师 1", "王老师 2", "王老师 3", "王老师 4"},
		},
		{
			name:      "关键词匹配姓名",
			req:       web.ListReq{Keyword: "李老师", Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantNames: []string{"李老师"},
		},
		{
			name:      "关键词匹配机构名",
			req:       web.ListReq{Keyword: "极客", Page: 2},
			wantTotal: 6,
			wantPages: 2,
			wantNames: []string{"王老师 1"},
		},
	}
	for _, tc := range testcases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := s.list(t, tc.req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, resp.Total)
			assert.Equal(t, tc.wantPages, resp.Pages)
			assert.Equal(t, tc.wantNames, slice.Map(resp.List, func(_ int, src web.Teacher) string {
				return src.Name
			}))
			// 排行榜收藏数优先，点击数其次
			assert.Equal(t, []string{"王老师 6", "王老师 5", "王老师 4", "王老师 3", "王老师 2"},
				slice.Map(resp.Ranking, func(_ int, src web.Teacher) string {
					return src.Name
				}))
		})
	}

	// 列表里机构名已经拼好了
	recorder := s.list(t, web.ListReq{Page: 1})
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, "", resp.List[0].OrgName)
	assert.Equal(t, "极客学院", resp.List[1].OrgName)
}

func (s *TeacherTestSuite) TestList_PageOutOfRange() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Teacher{Name: "王老师"}).Error)
	recorder := s.list(t, web.ListReq{Page: 9})
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.ListResp]{Code: 505003, Msg: "页码超出范围"}, recorder.MustScan())
}

func (s *TeacherTestSuite) TestDetail() {
	t := s.T()
	require.NoError(t, s.db.Exec("INSERT INTO `cities` (`id`, `name`, `ctime`) VALUES (1, '北京', 0)").Error)
	require.NoError(t, s.db.Exec(
		"INSERT INTO `course_orgs` (`id`, `name`, `city_id`, `students`, `course_cnt`, `ctime`, `utime`) VALUES (1, '极客学院', 1, 1000, 20, 0, 0)").Error)
	require.NoError(t, s.db.Create(&dao.Teacher{
		Id:           1,
		OrgId:        1,
		Name:         "王老师",
		Age:          35,
		WorkYears:    12,
		WorkCompany:  "字节跳动",
		WorkPosition: "资深工程师",
		Points:       "深入浅出，案例驱动",
		FavCnt:       5,
		Ctime:        1000,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/teachers/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, web.Teacher{
		Id:        1,
		OrgId:     1,
		OrgName:   "极客学院",
		Name:      "王老师",
		Age:       35,
		WorkYears: 12,
		Company:   "字节跳动",
		Position:  "资深工程师",
		Points:    "深入浅出，案例驱动",
		FavCnt:    5,
	}, resp.Teacher)
	assert.Equal(t, web.OrgSummary{
		Id:       1,
		Name:     "极客学院",
		City:     "北京",
		Students: 1000,
		Courses:  20,
	}, resp.Org)
	assert.False(t, resp.Favorited)

	// 浏览事件异步消费，点击数随后加一
	require.Eventually(t, func() bool {
		var clickCnt int
		err := s.db.Raw("SELECT `click_cnt` FROM `teachers` WHERE `id` = 1").Scan(&clickCnt).Error
		return err == nil && clickCnt == 1
	}, 3*time.Second, 100*time.Millisecond)
}

func (s *TeacherTestSuite) TestDetail_Freelancer() {
	t := s.T()
	// 没有挂靠机构的讲师，机构摘要为空
	require.NoError(t, s.db.Create(&dao.Teacher{
		Id:    1,
		Name:  "李老师",
		Ctime: 1000,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/teachers/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, "李老师", resp.Teacher.Name)
	assert.Equal(t, web.OrgSummary{}, resp.Org)
}

func (s *TeacherTestSuite) TestDetail_Favorited() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Teacher{Id: 1, Name: "王老师"}).Error)
	err := s.db.Exec("INSERT INTO `favorites` (`uid`, `target_kind`, `target_id`, `ctime`) VALUES (?, 3, 1, 1000)", uid).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/teachers/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.authServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.True(t, recorder.MustScan().Data.Favorited)
}

func (s *TeacherTestSuite) TestDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/teachers/detail", iox.NewJSONReader(web.IdReq{Id: 99999}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.DetailResp]{Code: 505002, Msg: "讲师不存在"}, recorder.MustScan())
}

func (s *TeacherTestSuite) TestOfOrg() {
	t := s.T()
	s.seedOrg(t, 1, "极客学院")
	s.seedOrg(t, 2, "疯狂英语")
	require.NoError(t, s.db.Create(&dao.Teacher{OrgId: 1, Name: "王老师", Ctime: 1000}).Error)
	require.NoError(t, s.db.Create(&dao.Teacher{OrgId: 1, Name: "张老师", Ctime: 2000}).Error)
	require.NoError(t, s.db.Create(&dao.Teacher{OrgId: 2, Name: "刘老师", Ctime: 3000}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/teachers/of-org", iox.NewJSONReader(web.OfOrgReq{OrgId: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.TeachersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, []string{"张老师", "王老师"}, slice.Map(resp.List, func(_ int, src web.Teacher) string {
		return src.Name
	}))
	assert.Equal(t, "极客学院", resp.List[0].OrgName)
}

func TestTeacherHandler(t *testing.T) {
	suite.Run(t, new(TeacherTestSuite))
}
