package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mooc/internal/course/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	courseNotFoundResult = ginx.Result{
		Code: errs.CourseNotFound.Code,
		Msg:  errs.CourseNotFound.Msg,
	}
	pageOutOfRangeResult = ginx.Result{
		Code: errs.PageOutOfRange.Code,
		Msg:  errs.PageOutOfRange.Msg,
	}
)
