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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/course/internal/domain"
	"github.com/ecodeclub/mooc/internal/course/internal/service"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CourseService
}

func NewHandler(svc service.CourseService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/courses")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/of-org", ginx.B[OfOrgReq](h.OfOrg))
	g.POST("/of-teacher", ginx.B[OfTeacherReq](h.OfTeacher))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/courses")
	g.POST("/content", ginx.BS[IdReq](h.Content))
	g.POST("/mine", ginx.S(h.Mine))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	courses, page, err := h.svc.List(ctx.Request.Context(), domain.Query{
		Keyword: req.Keyword,
		Degree:  domain.Degree(req.Degree),
		Sort:    req.Sort,
		Page:    req.Page,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: ListResp{
				List:  toCourseVOs(courses),
				Total: page.Total,
				Pages: page.Pages,
			},
		}, nil
	case errors.Is(err, pagination.ErrPageOutOfRange):
		return pageOutOfRangeResult, err
	default:
		return systemErrorResult, err
	}
}

// Detail 匿名也能看，登录了才有收藏标记
func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	var uid int64
	if sess, err := session.Get(ctx); err == nil {
		uid = sess.Claims().Uid
	}
	detail, err := h.svc.Detail(ctx.Request.Context(), req.Id, uid)
	switch {
	case err == nil:
		return ginx.Result{Data: toDetailResp(detail)}, nil
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Content(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	content, err := h.svc.Content(ctx.Request.Context(), req.Id, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{
			Data: ContentResp{
				Lessons: slice.Map(content.Lessons, func(_ int, src domain.Lesson) Lesson {
					return Lesson{
						Id:   src.Id,
						Name: src.Name,
						Videos: slice.Map(src.Videos, func(_ int, v domain.Video) Video {
							return Video{
								Id:           v.Id,
								Name:         v.Name,
								Url:          v.Url,
								LearnMinutes: v.LearnMinutes,
							}
						}),
					}
				}),
				Resources: slice.Map(content.Resources, func(_ int, src domain.Resource) Resource {
					return Resource{
						Id:          src.Id,
						Name:        src.Name,
						DownloadUrl: src.DownloadUrl,
					}
				}),
				AlsoLearned: toCourseVOs(content.AlsoLearned),
			},
		}, nil
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	courses, err := h.svc.Mine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CoursesResp{List: toCourseVOs(courses)}}, nil
}

func (h *Handler) OfOrg(ctx *ginx.Context, req OfOrgReq) (ginx.Result, error) {
	courses, err := h.svc.ByOrg(ctx.Request.Context(), req.OrgId, req.Sort)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CoursesResp{List: toCourseVOs(courses)}}, nil
}

func (h *Handler) OfTeacher(ctx *ginx.Context, req OfTeacherReq) (ginx.Result, error) {
	courses, err := h.svc.ByTeacher(ctx.Request.Context(), req.TeacherId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CoursesResp{List: toCourseVOs(courses)}}, nil
}

func toDetailResp(detail service.Detail) DetailResp {
	return DetailResp{
		Course:   toCourseVO(detail.Course),
		Detail:   detail.Course.Detail,
		Category: detail.Category.Name,
		Tags: slice.Map(detail.Tags, func(_ int, src domain.Tag) Tag {
			return Tag{Id: src.Id, Name: src.Name}
		}),
		Org: OrgSummary{
			Id:       detail.Org.Id,
			Name:     detail.Org.Name,
			City:     detail.Org.CityName,
			Students: detail.Org.Students,
			Courses:  detail.Org.CourseCnt,
		},
		Teacher: TeacherSummary{
			Id:        detail.Teacher.Id,
			Name:      detail.Teacher.Name,
			WorkYears: detail.Teacher.WorkYears,
			Company:   detail.Teacher.Company,
		},
		Related:      toCourseVOs(detail.Related),
		Favorited:    detail.Favorited,
		OrgFavorited: detail.OrgFavorited,
	}
}

func toCourseVOs(courses []domain.Course) []Course {
	return slice.Map(courses, func(_ int, src domain.Course) Course {
		return toCourseVO(src)
	})
}

func toCourseVO(c domain.Course) Course {
	return Course{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		Degree:       uint8(c.Degree),
		LearnMinutes: c.LearnMinutes,
		Students:     c.Students,
		FavCnt:       c.FavCnt,
		ClickCnt:     c.ClickCnt,
		OrgId:        c.OrgId,
	}
}
