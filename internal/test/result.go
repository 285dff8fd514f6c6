package test

// Result 和 ginx.Result 对应，方便在测试里面反序列化
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
