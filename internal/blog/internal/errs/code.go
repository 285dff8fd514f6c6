package errs

var (
	SystemError = ErrorCode{Code: 504001, Msg: "系统错误"}
	// AIFailed 大模型调用失败，可以重试
	AIFailed = ErrorCode{Code: 504002, Msg: "AI 生成失败，请稍后再试"}

	InvalidInput      = ErrorCode{Code: 404001, Msg: "输入错误"}
	PostNotFound      = ErrorCode{Code: 404002, Msg: "文章不存在"}
	SummaryInProgress = ErrorCode{Code: 404003, Msg: "摘要正在生成，请稍后再试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
