package errs

var (
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	TeacherNotFound = ErrorCode{Code: 505002, Msg: "讲师不存在"}
	PageOutOfRange  = ErrorCode{Code: 505003, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
