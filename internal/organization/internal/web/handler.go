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
	"github.com/ecodeclub/mooc/internal/organization/internal/domain"
	"github.com/ecodeclub/mooc/internal/organization/internal/service"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.OrganizationService
}

func NewHandler(svc service.OrganizationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/orgs")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/cities", ginx.W(h.Cities))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	orgs, hot, page, err := h.svc.List(ctx.Request.Context(), domain.Query{
		Keyword:  req.Keyword,
		Category: domain.Category(req.Category),
		CityId:   req.CityId,
		Sort:     req.Sort,
		Page:     req.Page,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: ListResp{
				List:  toOrgVOs(orgs),
				Hot:   toOrgVOs(hot),
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
				Org:       toOrgVO(detail.Org),
				Favorited: detail.Favorited,
			},
		}, nil
	case errors.Is(err, service.ErrOrgNotFound):
		return orgNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Cities(ctx *ginx.Context) (ginx.Result, error) {
	cities, err := h.svc.Cities(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CitiesResp{
			Cities: slice.Map(cities, func(_ int, src domain.City) City {
				return City{Id: src.Id, Name: src.Name}
			}),
		},
	}, nil
}

func toOrgVOs(orgs []domain.Organization) []Organization {
	return slice.Map(orgs, func(_ int, src domain.Organization) Organization {
		return toOrgVO(src)
	})
}

func toOrgVO(org domain.Organization) Organization {
	return Organization{
		Id:          org.Id,
		Name:        org.Name,
		Description: org.Description,
		Category:    uint8(org.Category),
		CityId:      org.CityId,
		CityName:    org.CityName,
		Students:    org.Students,
		CourseCnt:   org.CourseCnt,
		FavCnt:      org.FavCnt,
		ClickCnt:    org.ClickCnt,
	}
}
