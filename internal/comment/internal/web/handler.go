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
	"github.com/ecodeclub/mooc/internal/comment/internal/domain"
	"github.com/ecodeclub/mooc/internal/comment/internal/service"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 评论列表不要求登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/comments")
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/comments")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Comment{
		User:     domain.User{Id: sess.Claims().Uid},
		CourseId: req.CourseId,
		Content:  req.Content,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrInvalidContent):
		return invalidContentResult, err
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	comments, page, err := h.svc.List(ctx.Request.Context(), req.CourseId, req.Page)
	switch {
	case err == nil:
		return ginx.Result{
			Data: ListResp{
				List: slice.Map(comments, func(_ int, src domain.Comment) Comment {
					return Comment{
						Id: src.Id,
						User: User{
							Id:       src.User.Id,
							Nickname: src.User.Nickname,
							Avatar:   src.User.Avatar,
						},
						Content: src.Content,
						Ctime:   src.Ctime,
					}
				}),
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
