package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// SubmitFailed 申请提交失败，具体原因只记录在日志里面
	SubmitFailed         = ErrorCode{Code: 503002, Msg: "Failed to submit application. Please try again."}
	InvalidInput         = ErrorCode{Code: 403001, Msg: "Please fill in all required fields."}
	ResumeRequired       = ErrorCode{Code: 403002, Msg: "Please upload your resume."}
	UnsupportedResume    = ErrorCode{Code: 403003, Msg: "Resume must be a PDF, DOC or DOCX file no larger than 10MB."}
	JobNotAvailable      = ErrorCode{Code: 403004, Msg: "This position is no longer accepting applications."}
	SubmissionInProgress = ErrorCode{Code: 403005, Msg: "Your application is being submitted, please wait."}
	ApplicationNotFound  = ErrorCode{Code: 403006, Msg: "申请不存在"}
	InvalidStatus        = ErrorCode{Code: 403007, Msg: "非法的申请状态"}
	InvalidFilter        = ErrorCode{Code: 403008, Msg: "非法的筛选条件"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
