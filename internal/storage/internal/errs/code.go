package errs

var (
	SystemError = ErrorCode{Code: 514001, Msg: "系统错误"}
	InvalidKey  = ErrorCode{Code: 414001, Msg: "非法的文件路径"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
