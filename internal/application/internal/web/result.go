package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/application/internal/errs"
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
	resumeRequiredResult = ginx.Result{
		Code: errs.ResumeRequired.Code,
		Msg:  errs.ResumeRequired.Msg,
	}
	unsupportedResumeResult = ginx.Result{
		Code: errs.UnsupportedResume.Code,
		Msg:  errs.UnsupportedResume.Msg,
	}
	jobNotAvailableResult = ginx.Result{
		Code: errs.JobNotAvailable.Code,
		Msg:  errs.JobNotAvailable.Msg,
	}
	submissionInProgressResult = ginx.Result{
		Code: errs.SubmissionInProgress.Code,
		Msg:  errs.SubmissionInProgress.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
	invalidFilterResult = ginx.Result{
		Code: errs.InvalidFilter.Code,
		Msg:  errs.InvalidFilter.Msg,
	}
)
