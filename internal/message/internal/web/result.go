package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/message/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	pageOutOfRangeResult = ginx.Result{
		Code: errs.PageOutOfRange.Code,
		Msg:  errs.PageOutOfRange.Msg,
	}
)
