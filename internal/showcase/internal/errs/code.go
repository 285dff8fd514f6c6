package errs

var (
	SystemError = ErrorCode{Code: 506001, Msg: "系统错误"}

	InvalidInput = ErrorCode{Code: 406001, Msg: "输入错误"}
	NotFound     = ErrorCode{Code: 406002, Msg: "内容不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
