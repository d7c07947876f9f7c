package errs

var (
	SystemError    = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidContent = ErrorCode{Code: 506002, Msg: "评论内容为空或者超长"}
	PageOutOfRange = ErrorCode{Code: 506003, Msg: "页码超出范围"}
	CourseNotFound = ErrorCode{Code: 506004, Msg: "课程不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
