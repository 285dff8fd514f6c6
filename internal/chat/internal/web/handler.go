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
	"github.com/ecodeclub/mastersolis/internal/chat/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/chat/internal/service"
	"github.com/gin-gonic/gin"
)

// WidgetTokenHeader 每个聊天窗口一个
const WidgetTokenHeader = "X-Form-Token"

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/chat")
	g.POST("/ask", ginx.B[AskReq](h.Ask))
	g.GET("/greeting", ginx.W(h.Greeting))
}

func (h *Handler) Ask(ctx *ginx.Context, req AskReq) (ginx.Result, error) {
	ans, err := h.svc.Ask(ctx, req.Message, ctx.GetHeader(WidgetTokenHeader))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, nil
	case errors.Is(err, service.ErrRequestInProgress):
		return ginx.Result{Code: errs.RequestInProgress.Code, Msg: errs.RequestInProgress.Msg}, nil
	case err != nil:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	return ginx.Result{
		Data: Answer{Content: ans.Content, Fallback: ans.Fallback},
	}, nil
}

func (h *Handler) Greeting(ctx *ginx.Context) (ginx.Result, error) {
	g := h.svc.Greeting(ctx)
	return ginx.Result{
		Data: Greeting{Message: g.Message, QuickActions: g.QuickActions},
	}, nil
}
