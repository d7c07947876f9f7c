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
	"github.com/ecodeclub/mooc/internal/organization/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/organization/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/organization/internal/web"
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

type OrganizationTestSuite struct {
	suite.Suite
	// server 不带登录态，列表和详情都是公开接口
	server *egin.Component
	// authServer 带登录态，用来验证已收藏标记
	authServer *egin.Component
	db         *egorm.Component
}

func (s *OrganizationTestSuite) SetupSuite() {
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

func (s *OrganizationTestSuite) TearDownTest() {
	for _, table := range []string{"course_orgs", "cities", "favorites"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *OrganizationTestSuite) list(t *testing.T, req web.ListReq) *test.JSONResponseRecorder[web.ListResp] {
	request, err := http.NewRequest(http.MethodPost,
		"/orgs/list", iox.NewJSONReader(req))
	request.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, request)
	return recorder
}

func (s *OrganizationTestSuite) TestList() {
	t := s.T()
	// 7 家机构：前 6 家 IT 类，最后一家语言类且换了城市
	for i := 1; i <= 7; i++ {
		org := dao.CourseOrg{
			Name:        fmt.Sprintf("极客学院 %d", i),
			Description: "专注后端工程师培养",
			Category:    1,
			CityId:      1,
			Students:    i * 100,
			FavCnt:      i,
			ClickCnt:    i * 10,
			Ctime:       int64(i * 1000),
		}
		if i == 7 {
			org.Name = "疯狂英语"
			org.Description = "口语速成"
			org.Category = 2
			org.CityId = 2
		}
		require.NoError(t, s.db.Create(&org).Error)
	}

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
			wantNames: []string{"疯狂英语", "极客学院 6", "极客学院 5", "极客学院 4", "极客学院 3"},
		},
		{
			name:      "第二页",
			req:       web.ListReq{Page: 2},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"极客学院 2", "极客学院 1"},
		},
		{
			name:      "关键词匹配简介",
			req:       web.ListReq{Keyword: "口语", Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantNames: []string{"疯狂英语"},
		},
		{
			name:      "按类目过滤",
			req:       web.ListReq{Category: 2, Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantNames: []string{"疯狂英语"},
		},
		{
			name:      "按城市过滤",
			req:       web.ListReq{CityId: 2, Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantNames: []string{"疯狂英语"},
		},
		{
			name:      "按学员数排序",
			req:       web.ListReq{Sort: "students", Page: 1},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"疯狂英语", "极客学院 6", "极客学院 5", "极客学院 4", "极客学院 3"},
		},
		{
			name:      "按收藏数排序",
			req:       web.ListReq{Sort: "fav", Page: 2},
			wantTotal: 7,
			wantPages: 2,
			wantNames: []string{"极客学院 2", "极客学院 1"},
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
			assert.Equal(t, tc.wantNames, slice.Map(resp.List, func(_ int, src web.Organization) string {
				return src.Name
			}))
			// 热门榜固定取点击数前三
			assert.Equal(t, []string{"极客学院 6", "极客学院 5", "极客学院 4"},
				slice.Map(resp.Hot, func(_ int, src web.Organization) string {
					return src.Name
				}))
		})
	}
}

func (s *OrganizationTestSuite) TestList_PageOutOfRange() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.CourseOrg{Name: "极客学院"}).Error)
	recorder := s.list(t, web.ListReq{Page: 5})
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.ListResp]{Code: 504003, Msg: "页码超出范围"}, recorder.MustScan())
}

func (s *OrganizationTestSuite) TestDetail() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.City{Id: 1, Name: "北京"}).Error)
	require.NoError(t, s.db.Create(&dao.CourseOrg{
		Id:          1,
		Name:        "极客学院",
		Description: "专注后端工程师培养",
		Category:    1,
		CityId:      1,
		Students:    1000,
		CourseCnt:   20,
		FavCnt:      5,
		Ctime:       1000,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/orgs/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, web.Organization{
		Id:          1,
		Name:        "极客学院",
		Description: "专注后端工程师培养",
		Category:    1,
		CityId:      1,
		CityName:    "北京",
		Students:    1000,
		CourseCnt:   20,
		FavCnt:      5,
	}, resp.Org)
	// 匿名访问没有已收藏标记
	assert.False(t, resp.Favorited)

	// 浏览事件异步消费，点击数随后加一
	require.Eventually(t, func() bool {
		var clickCnt int
		err := s.db.Raw("SELECT `click_cnt` FROM `course_orgs` WHERE `id` = 1").Scan(&clickCnt).Error
		return err == nil && clickCnt == 1
	}, 3*time.Second, 100*time.Millisecond)
}

func (s *OrganizationTestSuite) TestDetail_Favorited() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.CourseOrg{Id: 1, Name: "极客学院"}).Error)
	err := s.db.Exec("INSERT INTO `favorites` (`uid`, `target_kind`, `target_id`, `ctime`) VALUES (?, 2, 1, 1000)", uid).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/orgs/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.authServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.True(t, recorder.MustScan().Data.Favorited)
}

func (s *OrganizationTestSuite) TestDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/orgs/detail", iox.NewJSONReader(web.IdReq{Id: 99999}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.DetailResp]{Code: 504002, Msg: "机构不存在"}, recorder.MustScan())
}

func (s *OrganizationTestSuite) TestCities() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.City{Id: 1, Name: "北京"}).Error)
	require.NoError(t, s.db.Create(&dao.City{Id: 2, Name: "上海"}).Error)

	req, err := http.NewRequest(http.MethodPost, "/orgs/cities", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CitiesResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.CitiesResp{
		Cities: []web.City{
			{Id: 1, Name: "北京"},
			{Id: 2, Name: "上海"},
		},
	}, recorder.MustScan().Data)
}

func TestOrganizationHandler(t *testing.T) {
	suite.Run(t, new(OrganizationTestSuite))
}
