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

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler"
	"gorm.io/gorm"
)

type HandlerBuilder struct {
	repo repository.ConfigRepository
}

var _ handler.Builder = &HandlerBuilder{}

func NewBuilder(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{repo: repo}
}

func (h *HandlerBuilder) Name() string {
	return "config"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, err := h.repo.GetConfig(ctx, req.Biz)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LLMResponse{}, fmt.Errorf("%w: %s", handler.ErrUnknownBiz, req.Biz)
		}
		if err != nil {
			return domain.LLMResponse{}, err
		}
		if cfg.MaxInput > 0 {
			for _, in := range req.Input {
				if len([]rune(in)) > cfg.MaxInput {
					return domain.LLMResponse{}, fmt.Errorf("%w: biz %s 最多 %d 个字符",
						handler.ErrInputTooLong, req.Biz, cfg.MaxInput)
				}
			}
		}
		req.Config = cfg
		return next.Handle(ctx, req)
	})
}
