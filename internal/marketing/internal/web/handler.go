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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/course"
	"github.com/ecodeclub/mooc/internal/marketing/internal/domain"
	"github.com/ecodeclub/mooc/internal/marketing/internal/service"
	"github.com/ecodeclub/mooc/internal/organization"
	"github.com/ecodeclub/mooc/internal/teacher"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.LandingService
}

func NewHandler(svc service.LandingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/landing", ginx.W(h.Landing))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Landing(ctx *ginx.Context) (ginx.Result, error) {
	landing, err := h.svc.Landing(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toLandingResp(landing)}, nil
}

func toLandingResp(landing service.Landing) LandingResp {
	return LandingResp{
		Banners: slice.Map(landing.Banners, func(_ int, src domain.Banner) Banner {
			return Banner{Id: src.Id, Title: src.Title, Image: src.Image, Url: src.Url}
		}),
		BannerCourses: toCourseVOs(landing.BannerCourses),
		NewestCourses: toCourseVOs(landing.NewestCourses),
		HotOrgs: slice.Map(landing.HotOrgs, func(_ int, src organization.Organization) Org {
			return Org{
				Id:       src.Id,
				Name:     src.Name,
				City:     src.CityName,
				Students: src.Students,
				Courses:  src.CourseCnt,
			}
		}),
		TeacherRanking: slice.Map(landing.TeacherRanking, func(_ int, src teacher.Teacher) Teacher {
			return Teacher{
				Id:      src.Id,
				Name:    src.Name,
				Company: src.Company,
				FavCnt:  src.FavCnt,
				OrgName: src.OrgName,
			}
		}),
	}
}

func toCourseVOs(courses []course.Course) []Course {
	return slice.Map(courses, func(_ int, src course.Course) Course {
		return Course{
			Id:          src.Id,
			Name:        src.Name,
			Description: src.Description,
			Degree:      uint8(src.Degree),
			Students:    src.Students,
			FavCnt:      src.FavCnt,
		}
	})
}
