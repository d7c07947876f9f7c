package errs

var (
	SystemError    = ErrorCode{Code: 507001, Msg: "系统错误"}
	PageOutOfRange = ErrorCode{Code: 507002, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
