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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/job")
	g.POST("/save", ginx.BS[SaveJobReq](h.Save))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/close", ginx.B[IdReq](h.Close))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveJobReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidJob):
		return ginx.Result{
			Code: invalidInputResult.Code,
			Msg:  err.Error(),
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	offset, limit := req.page()
	jobs, total, err := h.svc.List(ctx, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobList{
			Total: total,
			List: slice.Map(jobs, func(idx int, src domain.JobPosting) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	job, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJob(job),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "删除成功",
	}, nil
}

func (h *AdminHandler) Close(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Close(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
