package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	userDuplicateResult = ginx.Result{
		Code: errs.UserDuplicate.Code,
		Msg:  errs.UserDuplicate.Msg,
	}
	invalidEmailOrPasswordResult = ginx.Result{
		Code: errs.InvalidEmailOrPassword.Code,
		Msg:  errs.InvalidEmailOrPassword.Msg,
	}
	userNotActivatedResult = ginx.Result{
		Code: errs.UserNotActivated.Code,
		Msg:  errs.UserNotActivated.Msg,
	}
	invalidCodeResult = ginx.Result{
		Code: errs.InvalidCode.Code,
		Msg:  errs.InvalidCode.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
	invalidPasswordResult = ginx.Result{
		Code: errs.InvalidPassword.Code,
		Msg:  errs.InvalidPassword.Msg,
	}
)
