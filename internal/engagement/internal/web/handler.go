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
	"github.com/ecodeclub/mooc/internal/engagement/internal/domain"
	"github.com/ecodeclub/mooc/internal/engagement/internal/repository"
	"github.com/ecodeclub/mooc/internal/engagement/internal/service"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.EngagementService
}

func NewHandler(svc service.EngagementService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// PrivateRoutes 收藏动作都要求登录，匿名请求被登录中间件拦下
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/engagement")
	g.POST("/favorite/toggle", ginx.BS[ToggleFavoriteReq](h.ToggleFavorite))
	g.POST("/favorite/stat", ginx.BS[FavoriteStatReq](h.FavoriteStat))
	g.POST("/favorite/list", ginx.BS[FavoriteListReq](h.FavoriteList))
}

func (h *Handler) ToggleFavorite(ctx *ginx.Context, req ToggleFavoriteReq, sess session.Session) (ginx.Result, error) {
	favorited, err := h.svc.ToggleFavorite(ctx.Request.Context(),
		domain.TargetKind(req.Kind), req.TargetId, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{
			Data: ToggleFavoriteResp{Favorited: favorited},
		}, nil
	case errors.Is(err, service.ErrInvalidTarget):
		return invalidTargetResult, err
	case errors.Is(err, repository.ErrTargetNotFound):
		return targetNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) FavoriteStat(ctx *ginx.Context, req FavoriteStatReq, sess session.Session) (ginx.Result, error) {
	favorited, err := h.svc.Favorited(ctx.Request.Context(),
		domain.TargetKind(req.Kind), req.TargetId, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			return invalidTargetResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FavoriteStatResp{Favorited: favorited},
	}, nil
}

func (h *Handler) FavoriteList(ctx *ginx.Context, req FavoriteListReq, sess session.Session) (ginx.Result, error) {
	favs, page, err := h.svc.FavoriteList(ctx.Request.Context(),
		sess.Claims().Uid, domain.TargetKind(req.Kind), req.Page)
	switch {
	case err == nil:
		return ginx.Result{
			Data: FavoriteListResp{
				Total: page.Total,
				Pages: page.Pages,
				List: slice.Map(favs, func(_ int, src domain.Favorite) Favorite {
					return Favorite{
						Kind:     uint8(src.Kind),
						TargetId: src.TargetId,
						Ctime:    src.Ctime,
					}
				}),
			},
		}, nil
	case errors.Is(err, pagination.ErrPageOutOfRange):
		return pageOutOfRangeResult, err
	case errors.Is(err, service.ErrInvalidTarget):
		return invalidTargetResult, err
	default:
		return systemErrorResult, err
	}
}
