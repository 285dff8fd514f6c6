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
	"github.com/ecodeclub/mastersolis/internal/contact/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/contact")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/status", ginx.B[StatusReq](h.UpdateStatus))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/stats", ginx.W(h.Stats))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, req.Limit)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ContactList{
			Total: total,
			List: slice.Map(cs, func(idx int, src domain.Contact) Contact {
				return newContact(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrContactNotFound):
		return contactNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newContact(c),
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrContactNotFound):
		return contactNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "Status updated",
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

func (h *AdminHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Stats{Total: res.Total, New: res.New},
	}, nil
}
