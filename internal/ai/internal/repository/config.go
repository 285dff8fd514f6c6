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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./config.go -destination=./mocks/config.mock.go -package=repomocks ConfigRepository
type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	// InitDefault 不存在才写入
	InitDefault(ctx context.Context, cfg domain.BizConfig) (bool, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
}

// CachedConfigRepository 每次调用 LLM 都要读配置，所以一定要缓存
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:    dao,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	res, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return res, nil
	}
	cfg, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	res = repo.toDomain(cfg)
	if err1 := repo.cache.Set(ctx, res); err1 != nil {
		repo.logger.Error("回写 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", biz))
	}
	return res, nil
}

func (repo *CachedConfigRepository) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	cfg, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(cfg), err
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	// 删缓存，下次读的时候再加载
	if err1 := repo.cache.Delete(ctx, cfg.Biz); err1 != nil {
		repo.logger.Error("删除 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", cfg.Biz))
	}
	return id, nil
}

func (repo *CachedConfigRepository) InitDefault(ctx context.Context, cfg domain.BizConfig) (bool, error) {
	return repo.dao.InsertIgnore(ctx, repo.toEntity(cfg))
}

func (repo *CachedConfigRepository) List(ctx context.Context) ([]domain.BizConfig, error) {
	cfgs, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cfgs, func(idx int, src dao.BizConfig) domain.BizConfig {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedConfigRepository) toDomain(cfg dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		MaxTokens:      cfg.MaxTokens,
		JSONMode:       cfg.JSONMode,
		SystemPrompt:   cfg.SystemPrompt,
		MaxInput:       cfg.MaxInput,
		PromptTemplate: cfg.PromptTemplate,
		Utime:          cfg.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(cfg domain.BizConfig) dao.BizConfig {
	return dao.BizConfig{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		MaxTokens:      cfg.MaxTokens,
		JSONMode:       cfg.JSONMode,
		SystemPrompt:   cfg.SystemPrompt,
		MaxInput:       cfg.MaxInput,
		PromptTemplate: cfg.PromptTemplate,
	}
}
