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
	"fmt"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type ConfigService interface {
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
	// InitDefaults 把所有业务的默认配置写进去，已经有的跳过
	InitDefaults(ctx context.Context) error
}

type configService struct {
	repo   repository.ConfigRepository
	model  string
	logger *elog.Component
}

func NewConfigService(repo repository.ConfigRepository, model DefaultModel) ConfigService {
	return &configService{
		repo:   repo,
		model:  string(model),
		logger: elog.DefaultLogger,
	}
}

// DefaultModel 默认配置里面使用的模型
type DefaultModel string

func (s *configService) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	return s.repo.Save(ctx, cfg)
}

func (s *configService) List(ctx context.Context) ([]domain.BizConfig, error) {
	return s.repo.List(ctx)
}

func (s *configService) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	if id <= 0 {
		return domain.BizConfig{}, fmt.Errorf("无效的ID %d", id)
	}
	return s.repo.GetById(ctx, id)
}

func (s *configService) InitDefaults(ctx context.Context) error {
	for _, cfg := range defaultConfigs(s.model) {
		inserted, err := s.repo.InitDefault(ctx, cfg)
		if err != nil {
			return fmt.Errorf("初始化 AI 配置 %s 失败: %w", cfg.Biz, err)
		}
		if inserted {
			s.logger.Info("写入默认 AI 配置", elog.String("biz", cfg.Biz))
		}
	}
	return nil
}
