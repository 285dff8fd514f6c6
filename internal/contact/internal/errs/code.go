package errs

var (
	SystemError = ErrorCode{Code: 505001, Msg: "系统错误"}
	// SubmitFailed 保存失败，提示用户重试
	SubmitFailed = ErrorCode{Code: 505002, Msg: "Failed to send message. Please try again."}

	InvalidInput         = ErrorCode{Code: 405001, Msg: "Please fill in all required fields."}
	ContactNotFound      = ErrorCode{Code: 405002, Msg: "留言不存在"}
	InvalidStatus        = ErrorCode{Code: 405003, Msg: "非法的状态"}
	SubmissionInProgress = ErrorCode{Code: 405004, Msg: "Your message is being sent, please wait."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
