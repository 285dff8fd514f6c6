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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/service"
	"github.com/gin-gonic/gin"
)

// FormTokenHeader 前端每次渲染表单生成一个，重复点击提交的时候不变
const FormTokenHeader = "X-Form-Token"

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/contact/submit", ginx.B[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	_, err := h.svc.Submit(ctx, req.toDomain(), ctx.GetHeader(FormTokenHeader))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrSubmissionInProgress):
		return submissionInProgressResult, nil
	case err != nil:
		return submitFailedResult, err
	}
	return ginx.Result{
		Msg: "Thank you for your message! We'll get back to you soon.",
	}, nil
}
