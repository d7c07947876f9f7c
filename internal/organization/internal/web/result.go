package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/organization/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orgNotFoundResult = ginx.Result{
		Code: errs.OrgNotFound.Code,
		Msg:  errs.OrgNotFound.Msg,
	}
	pageOutOfRangeResult = ginx.Result{
		Code: errs.PageOutOfRange.Code,
		Msg:  errs.PageOutOfRange.Msg,
	}
)
