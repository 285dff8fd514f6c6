package errs

var (
	SystemError  = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 402001, Msg: "职位信息不合法"}
	JobNotFound  = ErrorCode{Code: 402002, Msg: "职位不存在或者已经关闭"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
