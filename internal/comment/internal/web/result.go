package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/comment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidContentResult = ginx.Result{
		Code: errs.InvalidContent.Code,
		Msg:  errs.InvalidContent.Msg,
	}
	pageOutOfRangeResult = ginx.Result{
		Code: errs.PageOutOfRange.Code,
		Msg:  errs.PageOutOfRange.Msg,
	}
	courseNotFoundResult = ginx.Result{
		Code: errs.CourseNotFound.Code,
		Msg:  errs.CourseNotFound.Msg,
	}
)
