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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc       service.ConfigService
	recordSvc service.RecordService
}

func NewAdminHandler(svc service.ConfigService, recordSvc service.RecordService) *AdminHandler {
	return &AdminHandler{
		svc:       svc,
		recordSvc: recordSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	cfg := server.Group("/ai/config")
	cfg.POST("/save", ginx.B[ConfigRequest](h.Save))
	cfg.GET("/list", ginx.W(h.List))
	cfg.POST("/detail", ginx.B[IdReq](h.Detail))
	server.POST("/ai/record/list", ginx.B[RecordListReq](h.RecordList))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ConfigRequest) (ginx.Result, error) {
	if req.Config.Biz == "" || req.Config.PromptTemplate == "" {
		return invalidInputResult, nil
	}
	id, err := h.svc.Save(ctx, domain.BizConfig{
		Id:             req.Config.Id,
		Biz:            req.Config.Biz,
		MaxInput:       req.Config.MaxInput,
		Model:          req.Config.Model,
		Price:          req.Config.Price,
		Temperature:    req.Config.Temperature,
		TopP:           req.Config.TopP,
		MaxTokens:      req.Config.MaxTokens,
		JSONMode:       req.Config.JSONMode,
		SystemPrompt:   req.Config.SystemPrompt,
		PromptTemplate: req.Config.PromptTemplate,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	configs, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(configs, func(idx int, c domain.BizConfig) Config {
			return h.toConfig(c)
		}),
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	cfg, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toConfig(cfg),
	}, nil
}

func (h *AdminHandler) RecordList(ctx *ginx.Context, req RecordListReq) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	records, total, err := h.recordSvc.List(ctx, req.Biz, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RecordList{
			Total: total,
			Records: slice.Map(records, func(idx int, r domain.LLMRecord) Record {
				return Record{
					Id:     r.Id,
					Tid:    r.Tid,
					Biz:    r.Biz,
					Tokens: r.Tokens,
					Amount: r.Amount,
					Input:  r.Input,
					Status: r.Status.ToUint8(),
					Answer: r.Answer,
					Ctime:  r.Ctime,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) toConfig(cfg domain.BizConfig) Config {
	return Config{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		MaxInput:       cfg.MaxInput,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		MaxTokens:      cfg.MaxTokens,
		JSONMode:       cfg.JSONMode,
		SystemPrompt:   cfg.SystemPrompt,
		PromptTemplate: cfg.PromptTemplate,
		Utime:          cfg.Utime,
	}
}
