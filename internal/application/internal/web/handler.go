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
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// FormTokenHeader 前端每次打开申请表单生成一个
	FormTokenHeader = "X-Form-Token"
	redirectPath    = "/careers"
	redirectDelay   = 3
	// 除了简历之外的表单字段最多占用的内存
	formMemory = 1 << 20
)

// Handler 招聘页面提交申请，不需要登录
type Handler struct {
	svc     service.IntakeService
	maxSize int64
}

func NewHandler(svc service.IntakeService, cfg service.Config) *Handler {
	return &Handler{svc: svc, maxSize: cfg.MaxResumeSize}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/application/apply", ginx.W(h.Apply))
}

func (h *Handler) Apply(ctx *ginx.Context) (ginx.Result, error) {
	sub, err := h.submission(ctx)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return unsupportedResumeResult, nil
	case err != nil:
		return invalidInputResult, nil
	}
	id, err := h.svc.Apply(ctx, sub)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, domain.ErrResumeRequired):
		return resumeRequiredResult, nil
	case errors.Is(err, domain.ErrUnsupportedResume):
		return unsupportedResumeResult, nil
	case errors.Is(err, domain.ErrJobNotAvailable):
		return jobNotAvailableResult, nil
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return submissionInProgressResult, nil
	case err != nil:
		// 上传、保存和超时对外只给一个笼统的提示
		return submitFailedResult, err
	}
	return ginx.Result{
		Msg: "Application submitted successfully!",
		Data: ApplyResult{
			Id:            id,
			Redirect:      redirectPath,
			RedirectDelay: redirectDelay,
		},
	}, nil
}

func (h *Handler) submission(ctx *ginx.Context) (domain.Submission, error) {
	// 简历超出限制的部分不读，交给 Supported 去判断
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxSize+formMemory)
	if err := ctx.Request.ParseMultipartForm(formMemory); err != nil {
		return domain.Submission{}, fmt.Errorf("解析表单失败: %w", err)
	}
	jobId, err := strconv.ParseInt(ctx.PostForm("job_id"), 10, 64)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("job_id 不合法: %w", err)
	}
	years, err := strconv.Atoi(strings.TrimSpace(ctx.PostForm("experience_years")))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("experience_years 不合法: %w", err)
	}
	resume, err := h.resume(ctx)
	if err != nil {
		return domain.Submission{}, err
	}
	return domain.Submission{
		JobId:           jobId,
		FullName:        ctx.PostForm("full_name"),
		Email:           ctx.PostForm("email"),
		Phone:           ctx.PostForm("phone"),
		ExperienceYears: years,
		Education:       ctx.PostForm("education"),
		Skills:          ctx.PostForm("skills"),
		CoverLetter:     ctx.PostForm("cover_letter"),
		LinkedinURL:     ctx.PostForm("linkedin_url"),
		PortfolioURL:    ctx.PostForm("portfolio_url"),
		Resume:          resume,
		FormToken:       ctx.GetHeader(FormTokenHeader),
	}, nil
}

// resume 没有上传简历的时候返回空的 Resume
func (h *Handler) resume(ctx *ginx.Context) (domain.Resume, error) {
	header, err := ctx.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) {
		return domain.Resume{}, nil
	}
	if err != nil {
		return domain.Resume{}, fmt.Errorf("读取简历失败: %w", err)
	}
	file, err := header.Open()
	if err != nil {
		return domain.Resume{}, fmt.Errorf("读取简历失败: %w", err)
	}
	defer file.Close()
	// 多读一个字节，超过限制的简历会被判定为不支持
	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		return domain.Resume{}, fmt.Errorf("读取简历失败: %w", err)
	}
	return domain.Resume{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
