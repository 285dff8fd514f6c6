package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("申请信息不完整")
	ErrResumeRequired    = errors.New("没有上传简历")
	ErrUnsupportedResume = errors.New("不支持的简历格式或者简历太大")
	ErrJobNotAvailable   = errors.New("职位不存在或者已经关闭")
	ErrUploadFailed      = errors.New("上传简历失败")
	ErrPersistFailed     = errors.New("保存申请失败")
	// ErrSubmissionInProgress 同一个表单已经有一个提交在处理中
	ErrSubmissionInProgress = errors.New("申请正在提交中")
	// ErrTimeout 某一步调用超时，和其它失败区分开
	ErrTimeout = errors.New("调用超时")

	ErrApplicationNotFound = errors.New("申请不存在")
	ErrInvalidStatus       = errors.New("非法的申请状态")
	ErrInvalidTransition   = errors.New("不允许的状态流转")
	ErrInvalidFilter       = errors.New("非法的筛选条件")
)
