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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mooc/internal/user/internal/domain"
	"github.com/ecodeclub/mooc/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{userSvc: userSvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignUpReq](h.SignUp))
	users.POST("/activate", ginx.B[ActivateReq](h.Activate))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/password/reset-code", ginx.B[ResetCodeReq](h.SendPasswordResetCode))
	users.POST("/password/reset", ginx.B[ResetPasswordReq](h.ResetPassword))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/password/change", ginx.BS[ChangePasswordReq](h.ChangePassword))
	users.POST("/email/change-code", ginx.BS[EmailChangeCodeReq](h.SendEmailChangeCode))
	users.POST("/email/change", ginx.BS[ChangeEmailReq](h.ChangeEmail))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) SignUp(ctx *ginx.Context, req SignUpReq) (ginx.Result, error) {
	if !validPassword(req.Password, req.ConfirmPassword) {
		return invalidPasswordResult, errors.New("密码不合法")
	}
	id, err := h.userSvc.SignUp(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrUserDuplicate):
		return userDuplicateResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Activate(ctx *ginx.Context, req ActivateReq) (ginx.Result, error) {
	err := h.userSvc.Activate(ctx.Request.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidCode):
		return invalidCodeResult, err
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		_, err = session.NewSessionBuilder(ctx, u.Id).Build()
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{
			Data: Profile{
				Id:       u.Id,
				Email:    u.Email,
				Nickname: u.Nickname,
				Avatar:   u.Avatar,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidEmailOrPassword):
		return invalidEmailOrPasswordResult, err
	case errors.Is(err, service.ErrUserNotActivated):
		return userNotActivatedResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := sess.Destroy(ctx.Request.Context()); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Email:    u.Email,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			Birthday: u.Birthday,
			Gender:   u.Gender,
			Address:  u.Address,
			Phone:    u.Phone,
		},
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Birthday: req.Birthday,
		Gender:   req.Gender,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.ChangePassword(ctx.Request.Context(), sess.Claims().Uid, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidEmailOrPassword):
		return invalidEmailOrPasswordResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) SendPasswordResetCode(ctx *ginx.Context, req ResetCodeReq) (ginx.Result, error) {
	err := h.userSvc.SendPasswordResetCode(ctx.Request.Context(), req.Email)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	if !validPassword(req.NewPassword, req.ConfirmPassword) {
		return invalidPasswordResult, errors.New("密码不合法")
	}
	err := h.userSvc.ResetPassword(ctx.Request.Context(), req.Email, req.Code, req.NewPassword)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidCode):
		return invalidCodeResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) SendEmailChangeCode(ctx *ginx.Context, req EmailChangeCodeReq, _ session.Session) (ginx.Result, error) {
	if err := h.userSvc.SendEmailChangeCode(ctx.Request.Context(), req.NewEmail); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// validPassword 表单级校验，两次输入一致且长度在 6 到 64 之间
func validPassword(password, confirm string) bool {
	return password == confirm && len(password) >= 6 && len(password) <= 64
}

func (h *Handler) ChangeEmail(ctx *ginx.Context, req ChangeEmailReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.ChangeEmail(ctx.Request.Context(), sess.Claims().Uid, req.NewEmail, req.Code)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidCode):
		return invalidCodeResult, err
	case errors.Is(err, service.ErrUserDuplicate):
		return userDuplicateResult, err
	default:
		return systemErrorResult, err
	}
}
