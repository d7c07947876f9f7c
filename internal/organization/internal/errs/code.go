package errs

var (
	SystemError    = ErrorCode{Code: 504001, Msg: "系统错误"}
	OrgNotFound    = ErrorCode{Code: 504002, Msg: "机构不存在"}
	PageOutOfRange = ErrorCode{Code: 504003, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
