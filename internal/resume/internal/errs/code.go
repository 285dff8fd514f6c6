package errs

var (
	SystemError = ErrorCode{Code: 517001, Msg: "系统错误"}

	InvalidResume = ErrorCode{Code: 417001, Msg: "Please enter your full name."}
	SuggestFailed = ErrorCode{Code: 417002, Msg: "Failed to generate suggestions. Please try again."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
