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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/chat/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrInvalidInput      = errors.New("消息不能为空")
	ErrRequestInProgress = errors.New("上一个问题还没有回答完")
)

type Locker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=./chat.go -package=chatmocks -destination=../../mocks/chat.mock.go Service
type Service interface {
	// Ask 只把当前这一个问题发给大模型，不带历史消息
	Ask(ctx context.Context, message string, widgetToken string) (domain.Answer, error)
	Greeting(ctx context.Context) domain.Greeting
}

type service struct {
	llmSvc  ai.LLMService
	locker  Locker
	timeout time.Duration
	logger  *elog.Component
}

func NewService(llmSvc ai.LLMService, locker Locker) Service {
	return &service{
		llmSvc:  llmSvc,
		locker:  locker,
		timeout: 30 * time.Second,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("chat")),
	}
}

func (s *service) Ask(ctx context.Context, message string, widgetToken string) (domain.Answer, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Answer{}, ErrInvalidInput
	}
	key := ""
	if widgetToken != "" {
		key = "chat:" + widgetToken
	}
	var res domain.Answer
	err := s.locker.Do(ctx, key, func(ctx context.Context) error {
		res = s.ask(ctx, message)
		return nil
	})
	if errors.Is(err, flight.ErrInFlight) {
		return domain.Answer{}, ErrRequestInProgress
	}
	return res, err
}

func (s *service) ask(ctx context.Context, message string) domain.Answer {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	tid := shortuuid.New()
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizChat,
		Tid:   tid,
		Input: []string{message},
	})
	if err == nil && strings.TrimSpace(resp.Answer) != "" {
		return domain.Answer{Content: resp.Answer}
	}
	s.logger.Error("聊天助手回答失败", elog.String("tid", tid), elog.FieldErr(err))
	return domain.Answer{Content: domain.Apology, Fallback: true}
}

func (s *service) Greeting(ctx context.Context) domain.Greeting {
	return domain.DefaultGreeting()
}
