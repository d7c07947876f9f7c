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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mooc/internal/marketing/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/marketing/internal/web"
	"github.com/ecodeclub/mooc/internal/test"
	testioc "github.com/ecodeclub/mooc/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LandingTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *LandingTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *LandingTestSuite) TearDownTest() {
	for _, table := range []string{"banners", "courses", "course_orgs", "cities", "teachers"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *LandingTestSuite) TestLanding() {
	t := s.T()
	// 轮播图按 idx 排序，和插入顺序无关
	require.NoError(t, s.db.Create(&dao.Banner{
		Title: "秋季大促",
		Image: "https://cdn.example.com/banner/autumn.png",
		Url:   "https://example.com/sale",
		Idx:   2,
	}).Error)
	require.NoError(t, s.db.Create(&dao.Banner{
		Title: "新人专享",
		Image: "https://cdn.example.com/banner/newbie.png",
		Url:   "https://example.com/newbie",
		Idx:   1,
	}).Error)

	// 10 门课，前 5 门是运营挑出来的轮播课，但轮播位只放 4 门
	for i := 1; i <= 10; i++ {
		err := s.db.Exec(
			"INSERT INTO `courses` (`name`, `description`, `degree`, `students`, `fav_cnt`, `banner`, `ctime`, `utime`) VALUES (?, ?, 1, ?, ?, ?, ?, 0)",
			fmt.Sprintf("Go 微服务实战 %d", i), "从零到一", i*10, i, i <= 5, i*1000).Error
		require.NoError(t, err)
	}

	require.NoError(t, s.db.Exec("INSERT INTO `cities` (`id`, `name`, `ctime`) VALUES (1, '北京', 0)").Error)
	for i := 1; i <= 4; i++ {
		err := s.db.Exec(
			"INSERT INTO `course_orgs` (`name`, `city_id`, `students`, `course_cnt`, `click_cnt`, `ctime`, `utime`) VALUES (?, 1, ?, ?, ?, ?, 0)",
			fmt.Sprintf("极客学院 %d", i), i*100, i*5, i*10, i*1000).Error
		require.NoError(t, err)
	}

	for i := 1; i <= 6; i++ {
		err := s.db.Exec(
			"INSERT INTO `teachers` (`name`, `work_company`, `fav_cnt`, `click_cnt`, `ctime`, `utime`) VALUES (?, '字节跳动', ?, 0, ?, 0)",
			fmt.Sprintf("王老师 %d", i), i, i*1000).Error
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, "/landing", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.LandingResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data

	assert.Equal(t, []string{"新人专享", "秋季大促"}, slice.Map(resp.Banners, func(_ int, src web.Banner) string {
		return src.Title
	}))
	assert.Equal(t, "https://cdn.example.com/banner/newbie.png", resp.Banners[0].Image)
	assert.Equal(t, "https://example.com/newbie", resp.Banners[0].Url)

	// 轮播课取最新的 4 门
	assert.Equal(t, []string{"Go 微服务实战 5", "Go 微服务实战 4", "Go 微服务实战 3", "Go 微服务实战 2"},
		slice.Map(resp.BannerCourses, func(_ int, src web.Course) string {
			return src.Name
		}))
	// 最新课程取 8 门
	assert.Equal(t, []string{
		"Go 微服务实战 10", "Go 微服务实战 9", "Go 微服务实战 8", "Go 微服务实战 7",
		"Go 微服务实战 6", "Go 微服务实战 5", "Go 微服务实战 4", "Go 微服务实战 3",
	}, slice.Map(resp.NewestCourses, func(_ int, src web.Course) string {
		return src.Name
	}))
	assert.Equal(t, 100, resp.NewestCourses[0].Students)
	assert.Equal(t, 10, resp.NewestCourses[0].FavCnt)

	// 热门机构取点击数前三
	assert.Equal(t, []string{"极客学院 4", "极客学院 3", "极客学院 2"},
		slice.Map(resp.HotOrgs, func(_ int, src web.Org) string {
			return src.Name
		}))
	assert.Equal(t, web.Org{
		Id:       4,
		Name:     "极客学院 4",
		City:     "北京",
		Students: 400,
		Courses:  20,
	}, resp.HotOrgs[0])

	// 讲师排行榜取收藏数前五
	assert.Equal(t, []string{"王老师 6", "王老师 5", "王老师 4", "王老师 3", "王老师 2"},
		slice.Map(resp.TeacherRanking, func(_ int, src web.Teacher) string {
			return src.Name
		}))
	assert.Equal(t, "字节跳动", resp.TeacherRanking[0].Company)
}

func (s *LandingTestSuite) TestLanding_Empty() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/landing", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.LandingResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Empty(t, resp.Banners)
	assert.Empty(t, resp.BannerCourses)
	assert.Empty(t, resp.NewestCourses)
	assert.Empty(t, resp.HotOrgs)
	assert.Empty(t, resp.TeacherRanking)
}

func TestLandingHandler(t *testing.T) {
	suite.Run(t, new(LandingTestSuite))
}
