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

package openai

import (
	"context"
	"errors"
	"math"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const DeepSeekBaseURL = "https://api.deepseek.com/v1/"

var ErrEmptyAnswer = errors.New("大模型没有返回内容")

// Handler 兼容 OpenAI 协议的平台，deepseek、通义这一类都可以用
type Handler struct {
	client openai.Client
}

func NewHandler(baseURL, apikey string) *Handler {
	if baseURL == "" {
		baseURL = DeepSeekBaseURL
	}
	return &Handler{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(apikey),
		),
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(&req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	if len(completion.Choices) == 0 {
		return domain.LLMResponse{}, ErrEmptyAnswer
	}
	tokens := completion.Usage.TotalTokens
	// 报价都是 N/1k token，向上取整
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	return domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
		Answer: completion.Choices[0].Message.Content,
	}, nil
}

func (h *Handler) buildParams(req *domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(req.Config.SystemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt()))
	params := openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    shared.ChatModel(req.Config.Model),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.Float(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.Float(req.Config.TopP)
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.Config.MaxTokens)
	}
	if req.Config.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}
