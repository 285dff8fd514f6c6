package errs

var (
	SystemError = ErrorCode{Code: 507001, Msg: "系统错误"}

	InvalidInput      = ErrorCode{Code: 407001, Msg: "Please enter a message."}
	RequestInProgress = ErrorCode{Code: 407002, Msg: "Please wait for the previous answer."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
