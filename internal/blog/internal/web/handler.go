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
	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 博客页面，只能看到已经发布的文章
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/summary", ginx.B[IdReq](h.Summary))
	g.GET("/categories", ginx.W(h.Categories))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	filter := domain.Filter{Search: req.Search, Category: req.Category}
	offset, limit := req.page()
	posts, total, err := h.svc.PublishedList(ctx, filter, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Total: total,
			List: slice.Map(posts, func(idx int, src domain.Post) Post {
				return newPost(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	post, err := h.svc.View(ctx, req.Id)
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

func (h *Handler) Summary(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case errors.Is(err, service.ErrSummaryInProgress):
		return summaryInProgressResult, nil
	case errors.Is(err, service.ErrAIFailed):
		return aiFailedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: summary,
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	categories, err := h.svc.Categories(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: categories,
	}, nil
}
