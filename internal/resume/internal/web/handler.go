// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidResumeResult = ginx.Result{
		Code: errs.InvalidResume.Code,
		Msg:  errs.InvalidResume.Msg,
	}
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("resume")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/resume")
	g.POST("/suggest", ginx.B[Resume](h.Suggest))
	// 直接返回文件，不走 ginx.Result
	g.POST("/render", h.Render)
}

func (h *Handler) Suggest(ctx *ginx.Context, req Resume) (ginx.Result, error) {
	res, err := h.svc.Suggest(ctx, req.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidResume):
		return invalidResumeResult, nil
	case errors.Is(err, service.ErrSuggestFailed):
		return ginx.Result{Code: errs.SuggestFailed.Code, Msg: errs.SuggestFailed.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Suggestion{
			Summary:    res.Summary,
			Skills:     res.Skills,
			PowerWords: res.PowerWords,
		},
	}, nil
}

func (h *Handler) Render(ctx *gin.Context) {
	var req Resume
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, invalidResumeResult)
		return
	}
	doc, err := h.svc.Render(ctx, req.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidResume):
		ctx.JSON(http.StatusOK, invalidResumeResult)
		return
	case err != nil:
		h.logger.Error("生成简历文件失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", doc.Content)
}
