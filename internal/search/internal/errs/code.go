package errs

var (
	SystemError = ErrorCode{Code: 509001, Msg: "系统错误"}

	InvalidQuery = ErrorCode{Code: 409001, Msg: "搜索条件错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
