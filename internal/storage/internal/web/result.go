package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidKeyResult = ginx.Result{
		Code: errs.InvalidKey.Code,
		Msg:  errs.InvalidKey.Msg,
	}
)
