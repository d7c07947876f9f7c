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
	"github.com/ecodeclub/mooc/internal/message/internal/domain"
	"github.com/ecodeclub/mooc/internal/message/internal/service"
	"github.com/ecodeclub/mooc/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.MessageService
}

func NewHandler(svc service.MessageService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/messages")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/unread-count", ginx.S(h.UnreadCount))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	msgs, page, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, req.Page)
	switch {
	case err == nil:
		return ginx.Result{
			Data: ListResp{
				List: slice.Map(msgs, func(_ int, src domain.Message) Message {
					return Message{
						Id:        src.Id,
						Content:   src.Content,
						Broadcast: src.Uid == 0,
						HasRead:   src.HasRead,
						Ctime:     src.Ctime,
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

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	count, err := h.svc.UnreadCount(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UnreadCountResp{Count: count}}, nil
}
