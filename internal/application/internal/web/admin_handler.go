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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 后台查看和处理申请
type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("application.admin")),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/application")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/status", ginx.B[StatusReq](h.UpdateStatus))
	g.POST("/stats", ginx.W(h.Stats))
	// 直接返回文件，不走 ginx.Result
	g.POST("/export", h.Export)
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	offset, limit := req.page()
	apps, total, err := h.svc.List(ctx, req.toDomain(), offset, limit)
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		return invalidFilterResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			List: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, domain.ErrApplicationNotFound):
		return applicationNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	app, err := h.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status))
	switch {
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidTransition):
		return invalidStatusResult, nil
	case errors.Is(err, domain.ErrApplicationNotFound):
		return applicationNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "Status updated",
		Data: newApplication(app),
	}, nil
}

func (h *AdminHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Stats{Total: res.Total, New: res.New},
	}, nil
}

func (h *AdminHandler) Export(ctx *gin.Context) {
	var req FilterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, invalidFilterResult)
		return
	}
	name, content, err := h.svc.Export(ctx, req.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		ctx.JSON(http.StatusOK, invalidFilterResult)
		return
	case err != nil:
		h.logger.Error("导出申请失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
