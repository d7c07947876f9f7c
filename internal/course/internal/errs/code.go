package errs

var (
	SystemError    = ErrorCode{Code: 503001, Msg: "系统错误"}
	CourseNotFound = ErrorCode{Code: 503002, Msg: "课程不存在"}
	PageOutOfRange = ErrorCode{Code: 503003, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
