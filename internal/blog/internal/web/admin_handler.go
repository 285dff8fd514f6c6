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
	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/save", ginx.BS[SavePostReq](h.Save))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/generate", ginx.B[GenerateReq](h.Generate))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SavePostReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidPost):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	offset, limit := req.page()
	posts, total, err := h.svc.List(ctx, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Total: total,
			List: slice.Map(posts, func(idx int, src domain.Post) Post {
				// 后台列表不需要正文
				src.Content = ""
				return newPost(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	post, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPost(post),
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

func (h *AdminHandler) Generate(ctx *ginx.Context, req GenerateReq) (ginx.Result, error) {
	content, err := h.svc.Generate(ctx, req.Title)
	switch {
	case errors.Is(err, service.ErrInvalidPost):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrAIFailed):
		return aiFailedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: content,
	}, nil
}
