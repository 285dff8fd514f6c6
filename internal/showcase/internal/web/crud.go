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
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/service"
	"github.com/gin-gonic/gin"
)

// crudHandler T 是领域对象，V 是前端使用的对象
type crudHandler[T service.Entity, V any] struct {
	svc      service.ContentService[T]
	toVO     func(T) V
	toDomain func(V) T
}

func newCRUDHandler[T service.Entity, V any](svc service.ContentService[T],
	toVO func(T) V, toDomain func(V) T) *crudHandler[T, V] {
	return &crudHandler[T, V]{svc: svc, toVO: toVO, toDomain: toDomain}
}

func (h *crudHandler[T, V]) privateRoutes(g *gin.RouterGroup) {
	g.POST("/save", ginx.BS[V](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *crudHandler[T, V]) Save(ctx *ginx.Context, req V, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *crudHandler[T, V]) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ts, total, err := h.svc.List(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: List[V]{
			Total: total,
			List: slice.Map(ts, func(idx int, src T) V {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *crudHandler[T, V]) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	t, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(t),
	}, nil
}

func (h *crudHandler[T, V]) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "删除成功",
	}, nil
}
