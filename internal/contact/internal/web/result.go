package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	submitFailedResult = ginx.Result{
		Code: errs.SubmitFailed.Code,
		Msg:  errs.SubmitFailed.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	contactNotFoundResult = ginx.Result{
		Code: errs.ContactNotFound.Code,
		Msg:  errs.ContactNotFound.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
	submissionInProgressResult = ginx.Result{
		Code: errs.SubmissionInProgress.Code,
		Msg:  errs.SubmissionInProgress.Msg,
	}
)
