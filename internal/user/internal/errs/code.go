package errs

var (
	SystemError            = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicate          = ErrorCode{Code: 501002, Msg: "邮箱已经注册"}
	InvalidEmailOrPassword = ErrorCode{Code: 501003, Msg: "邮箱或者密码不正确"}
	UserNotActivated       = ErrorCode{Code: 501004, Msg: "邮箱尚未激活"}
	InvalidCode            = ErrorCode{Code: 501005, Msg: "验证码不正确或者已过期"}
	UserNotFound           = ErrorCode{Code: 501006, Msg: "用户不存在"}
	InvalidPassword        = ErrorCode{Code: 501007, Msg: "两次输入的密码不一致或者长度不符合要求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
