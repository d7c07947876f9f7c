package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/engagement/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTargetResult = ginx.Result{
		Code: errs.InvalidTarget.Code,
		Msg:  errs.InvalidTarget.Msg,
	}
	targetNotFoundResult = ginx.Result{
		Code: errs.TargetNotFound.Code,
		Msg:  errs.TargetNotFound.Msg,
	}
	pageOutOfRangeResult = ginx.Result{
		Code: errs.PageOutOfRange.Code,
		Msg:  errs.PageOutOfRange.Msg,
	}
)
