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
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/course/internal/integration/startup"
	"github.com/ecodeclub/mooc/internal/course/internal/repository/dao"
	"github.com/ecodeclub/mooc/internal/course/internal/web"
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

type CourseTestSuite struct {
	suite.Suite
	// server 公开路由是匿名的，私有路由带 uid 的会话
	server *egin.Component
	// authServer 全部路由都带会话，测登录态下的公开接口
	authServer *egin.Component
	db         *egorm.Component
	enrollDAO  dao.EnrollmentDAO
}

func (s *CourseTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	handler := module.Hdl

	sessionMiddleware := func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	}

	server := egin.Load("server").Build()
	handler.PublicRoutes(server.Engine)
	server.Use(sessionMiddleware)
	handler.PrivateRoutes(server.Engine)
	s.server = server

	authServer := egin.Load("server").Build()
	authServer.Use(sessionMiddleware)
	handler.PublicRoutes(authServer.Engine)
	handler.PrivateRoutes(authServer.Engine)
	s.authServer = authServer

	s.db = testioc.InitDB()
	s.enrollDAO = dao.NewGORMEnrollmentDAO(s.db)
}

func (s *CourseTestSuite) TearDownTest() {
	for _, table := range []string{
		"courses", "categories", "tags", "course_tags",
		"lessons", "videos", "course_resources",
		"user_courses", "course_orgs", "teachers", "favorites",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *CourseTestSuite) TestList() {
	t := s.T()
	// 九门 Go 课加一门 Kubernetes 课，页大小 8 正好是两页
	for i := 1; i <= 9; i++ {
		err := s.db.Create(&dao.Course{
			Name:        fmt.Sprintf("Go 微服务实战 %d", i),
			Description: "从零开始的微服务",
			Degree:      1,
			Students:    i * 10,
			Ctime:       int64(i) * 1000,
		}).Error
		require.NoError(t, err)
	}
	err := s.db.Create(&dao.Course{
		Name:        "Kubernetes 实战",
		Description: "容器编排进阶",
		Degree:      3,
		Students:    10000,
		Ctime:       100,
	}).Error
	require.NoError(t, err)

	testcases := []struct {
		name      string
		req       web.ListReq
		wantTotal int64
		wantPages int
		wantLen   int
		// wantFirst 第一条的课程名，为空则不校验
		wantFirst string
	}{
		{
			name:      "默认按最新排序_第一页",
			req:       web.ListReq{Page: 1},
			wantTotal: 10,
			wantPages: 2,
			wantLen:   8,
			wantFirst: "Go 微服务实战 9",
		},
		{
			name:      "第二页_剩余两条",
			req:       web.ListReq{Page: 2},
			wantTotal: 10,
			wantPages: 2,
			wantLen:   2,
		},
		{
			name:      "页码缺省当成第一页",
			req:       web.ListReq{},
			wantTotal: 10,
			wantPages: 2,
			wantLen:   8,
		},
		{
			name:      "关键字匹配不分大小写",
			req:       web.ListReq{Keyword: "kubernetes", Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantLen:   1,
			wantFirst: "Kubernetes 实战",
		},
		{
			name:      "关键字也匹配简介",
			req:       web.ListReq{Keyword: "容器编排", Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantLen:   1,
			wantFirst: "Kubernetes 实战",
		},
		{
			name:      "按难度过滤",
			req:       web.ListReq{Degree: 3, Page: 1},
			wantTotal: 1,
			wantPages: 1,
			wantLen:   1,
			wantFirst: "Kubernetes 实战",
		},
		{
			name:      "按学习人数排序",
			req:       web.ListReq{Sort: "students", Page: 1},
			wantTotal: 10,
			wantPages: 2,
			wantLen:   8,
			wantFirst: "Kubernetes 实战",
		},
		{
			name:      "不认识的排序键按默认处理",
			req:       web.ListReq{Sort: "hottest", Page: 1},
			wantTotal: 10,
			wantPages: 2,
			wantLen:   8,
			wantFirst: "Go 微服务实战 9",
		},
	}
	for _, tc := range testcases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/courses/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ListResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, resp.Total)
			assert.Equal(t, tc.wantPages, resp.Pages)
			require.Len(t, resp.List, tc.wantLen)
			if tc.wantFirst != "" {
				assert.Equal(t, tc.wantFirst, resp.List[0].Name)
			}
		})
	}

	// 超出页码范围
	req, err := http.NewRequest(http.MethodPost,
		"/courses/list", iox.NewJSONReader(web.ListReq{Page: 3}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.ListResp]{
		Code: 503003, Msg: "页码超出范围",
	}, recorder.MustScan())
}

func (s *CourseTestSuite) seedDetailData(t *testing.T) int64 {
	// 机构和讲师在别的模块里建表，这里直接插数据
	err := s.db.Exec("INSERT INTO `course_orgs` (`id`, `name`, `city_id`, `students`, `course_cnt`) VALUES (1, '极客学院', 1, 100, 5)").Error
	require.NoError(t, err)
	err = s.db.Exec("INSERT INTO `teachers` (`id`, `org_id`, `name`, `work_years`, `work_company`) VALUES (1, 1, '王老师', 10, '极客学院')").Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Category{Id: 1, Name: "后端开发"}).Error
	require.NoError(t, err)
	for i, name := range []string{"Go", "微服务", "Docker"} {
		err = s.db.Create(&dao.Tag{Id: int64(i + 1), Name: name}).Error
		require.NoError(t, err)
	}

	courses := []dao.Course{
		// 主课，标签 Go + 微服务
		{Id: 1, Name: "Go 微服务实战", OrgId: 1, TeacherId: 1, CategoryId: 1, Students: 100},
		// 两个标签都重合
		{Id: 2, Name: "Go 微服务进阶", Students: 10},
		// 只重合一个标签，学习人数多
		{Id: 3, Name: "Go 入门", Students: 999},
		// 只重合一个标签，学习人数少
		{Id: 4, Name: "微服务设计", Students: 5},
		// 没有重合标签
		{Id: 5, Name: "Docker 入门", Students: 5000},
	}
	for i := range courses {
		err = s.db.Create(&courses[i]).Error
		require.NoError(t, err)
	}
	courseTags := []dao.CourseTag{
		{CourseId: 1, TagId: 1}, {CourseId: 1, TagId: 2},
		{CourseId: 2, TagId: 1}, {CourseId: 2, TagId: 2},
		{CourseId: 3, TagId: 1},
		{CourseId: 4, TagId: 2},
		{CourseId: 5, TagId: 3},
	}
	for i := range courseTags {
		err = s.db.Create(&courseTags[i]).Error
		require.NoError(t, err)
	}
	return 1
}

func (s *CourseTestSuite) TestDetail() {
	t := s.T()
	courseId := s.seedDetailData(t)

	req, err := http.NewRequest(http.MethodPost,
		"/courses/detail", iox.NewJSONReader(web.IdReq{Id: courseId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data

	assert.Equal(t, "Go 微服务实战", resp.Course.Name)
	assert.Equal(t, "后端开发", resp.Category)
	assert.Equal(t, "极客学院", resp.Org.Name)
	assert.Equal(t, "王老师", resp.Teacher.Name)
	require.Len(t, resp.Tags, 2)
	// 相关课程：重合标签多的在前，一样多的看学习人数
	require.Len(t, resp.Related, 3)
	assert.Equal(t, "Go 微服务进阶", resp.Related[0].Name)
	assert.Equal(t, "Go 入门", resp.Related[1].Name)
	assert.Equal(t, "微服务设计", resp.Related[2].Name)
	// 匿名访问收藏标记一律是 false
	assert.False(t, resp.Favorited)
	assert.False(t, resp.OrgFavorited)
}

func (s *CourseTestSuite) TestDetail_Favorited() {
	t := s.T()
	courseId := s.seedDetailData(t)
	// 用户收藏过课程和机构
	err := s.db.Exec("INSERT INTO `favorites` (`uid`, `target_kind`, `target_id`, `ctime`) VALUES (?, 1, ?, 123), (?, 2, 1, 123)",
		uid, courseId, uid).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/courses/detail", iox.NewJSONReader(web.IdReq{Id: courseId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.authServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.True(t, resp.Favorited)
	assert.True(t, resp.OrgFavorited)
}

func (s *CourseTestSuite) TestDetail_NoOrg() {
	t := s.T()
	// 没挂靠机构的课，登录用户打开详情页
	err := s.db.Create(&dao.Course{Id: 1, Name: "独立课程", Students: 10}).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/courses/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.authServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, "独立课程", resp.Course.Name)
	assert.Equal(t, web.OrgSummary{}, resp.Org)
	assert.False(t, resp.OrgFavorited)
}

func (s *CourseTestSuite) TestDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/courses/detail", iox.NewJSONReader(web.IdReq{Id: 99999}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.DetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.DetailResp]{
		Code: 503002, Msg: "课程不存在",
	}, recorder.MustScan())
}

func (s *CourseTestSuite) TestContent() {
	t := s.T()
	err := s.db.Create(&dao.Course{Id: 1, Name: "Go 微服务实战", Students: 0}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Lesson{Id: 1, CourseId: 1, Name: "第一章"}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Video{Id: 1, LessonId: 1, Name: "环境搭建", Url: "https://video/1", LearnMinutes: 12}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Video{Id: 2, LessonId: 1, Name: "第一个服务", Url: "https://video/2", LearnMinutes: 30}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.CourseResource{Id: 1, CourseId: 1, Name: "课件", DownloadUrl: "https://res/1"}).Error
	require.NoError(t, err)
	// 第 77 号用户同时学了 1 和 2，构造同学还学过
	err = s.db.Create(&dao.Course{Id: 2, Name: "Go 入门", Students: 50}).Error
	require.NoError(t, err)
	for _, cid := range []int64{1, 2} {
		_, err = s.enrollDAO.Enroll(context.Background(), 77, cid)
		require.NoError(t, err)
	}

	students := func() int {
		var cnt int
		err := s.db.Raw("SELECT `students` FROM `courses` WHERE `id` = 1").Scan(&cnt).Error
		require.NoError(t, err)
		return cnt
	}
	// 77 号选课之后是 1
	require.Equal(t, 1, students())

	content := func() web.ContentResp {
		req, err := http.NewRequest(http.MethodPost,
			"/courses/content", iox.NewJSONReader(web.IdReq{Id: 1}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[web.ContentResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder.MustScan().Data
	}

	resp := content()
	require.Len(t, resp.Lessons, 1)
	assert.Equal(t, "第一章", resp.Lessons[0].Name)
	require.Len(t, resp.Lessons[0].Videos, 2)
	require.Len(t, resp.Resources, 1)
	require.Len(t, resp.AlsoLearned, 1)
	assert.Equal(t, "Go 入门", resp.AlsoLearned[0].Name)
	// 第一次打开就算选课
	assert.Equal(t, 2, students())

	// 再打开一次，不会重复选课
	_ = content()
	assert.Equal(t, 2, students())
	var cnt int64
	err = s.db.Model(&dao.UserCourse{}).
		Where("uid = ? AND course_id = 1", uid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *CourseTestSuite) TestMine() {
	t := s.T()
	err := s.db.Create(&dao.Course{Id: 1, Name: "Go 微服务实战"}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.Course{Id: 2, Name: "没选过的课"}).Error
	require.NoError(t, err)
	_, err = s.enrollDAO.Enroll(context.Background(), uid, 1)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/courses/mine", iox.NewJSONReader(struct{}{}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CoursesResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Len(t, resp.List, 1)
	assert.Equal(t, "Go 微服务实战", resp.List[0].Name)
}

func TestCourseHandler(t *testing.T) {
	suite.Run(t, new(CourseTestSuite))
}
