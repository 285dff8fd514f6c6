package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidCredentials = ErrorCode{Code: 401001, Msg: "邮箱或者密码不对"}
	InvalidInput       = ErrorCode{Code: 401002, Msg: "请输入邮箱和密码"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
