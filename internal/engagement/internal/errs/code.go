package errs

var (
	SystemError    = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidTarget  = ErrorCode{Code: 502002, Msg: "非法的收藏目标"}
	TargetNotFound = ErrorCode{Code: 502003, Msg: "收藏目标不存在"}
	PageOutOfRange = ErrorCode{Code: 502004, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
