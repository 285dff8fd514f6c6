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
	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/search/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/search/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/search", ginx.B[SearchReq](h.Search))
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	res, err := h.svc.Search(ctx, domain.Query{
		Keyword: req.Keyword,
		Biz:     req.Biz,
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return ginx.Result{Code: errs.InvalidQuery.Code, Msg: errs.InvalidQuery.Msg}, nil
	case err != nil:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	return ginx.Result{
		Data: newSearchResult(res),
	}, nil
}
