package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	aiFailedResult = ginx.Result{
		Code: errs.AIFailed.Code,
		Msg:  errs.AIFailed.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	postNotFoundResult = ginx.Result{
		Code: errs.PostNotFound.Code,
		Msg:  errs.PostNotFound.Msg,
	}
	summaryInProgressResult = ginx.Result{
		Code: errs.SummaryInProgress.Code,
		Msg:  errs.SummaryInProgress.Msg,
	}
)
