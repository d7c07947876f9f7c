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
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/ecodeclub/mooc/internal/teacher/internal/domain"
	"github.com/ecodeclub/mooc/internal/teacher/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.TeacherService
}

func NewHandler(svc service.TeacherService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/teachers")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/of-org", ginx.B[OfOrgReq](h.OfOrg))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	teachers, ranking, page, err := h.svc.List(ctx.Request.Context(), domain.Query{
		Keyword: req.Keyword,
		Sort:    req.Sort,
		Page:    req.Page,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: ListResp{
				List:    toTeacherVOs(teachers),
				Ranking: toTeacherVOs(ranking),
				Total:   page.Total,
				Pages:   page.Pages,
			},
		}, nil
	case errors.Is(err, pagination.ErrPageOutOfRange):
		return pageOutOfRangeResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	var uid int64
	if sess, err := session.Get(ctx); err == nil {
		uid = sess.Claims().Uid
	}
	detail, err := h.svc.Detail(ctx.Request.Context(), req.Id, uid)
	switch {
	case err == nil:
		return ginx.Result{
			Data: DetailResp{
				Teacher: toTeacherVO(detail.Teacher),
				Org: OrgSummary{
					Id:       detail.Org.Id,
					Name:     detail.Org.Name,
					City:     detail.Org.CityName,
					Students: detail.Org.Students,
					Courses:  detail.Org.CourseCnt,
				},
				Favorited: detail.Favorited,
			},
		}, nil
	case errors.Is(err, service.ErrTeacherNotFound):
		return teacherNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) OfOrg(ctx *ginx.Context, req OfOrgReq) (ginx.Result, error) {
	teachers, err := h.svc.ByOrg(ctx.Request.Context(), req.OrgId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: TeachersResp{List: toTeacherVOs(teachers)}}, nil
}

func toTeacherVOs(teachers []domain.Teacher) []Teacher {
	return slice.Map(teachers, func(_ int, src domain.Teacher) Teacher {
		return toTeacherVO(src)
	})
}

func toTeacherVO(t domain.Teacher) Teacher {
	return Teacher{
		Id:        t.Id,
		OrgId:     t.OrgId,
		OrgName:   t.OrgName,
		Name:      t.Name,
		Age:       t.Age,
		WorkYears: t.WorkYears,
		Company:   t.Company,
		Position:  t.Position,
		Points:    t.Points,
		FavCnt:    t.FavCnt,
		ClickCnt:  t.ClickCnt,
	}
}
