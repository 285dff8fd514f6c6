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

package ai

import (
	"context"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	PlatformDeepSeek = "deepseek"
	PlatformOpenAI   = "openai"
	PlatformZhipu    = "zhipu"
)

type Config struct {
	// deepseek, openai 或者 zhipu
	Platform string `yaml:"platform"`
	BaseURL  string `yaml:"baseURL"`
	APIKey   string `yaml:"apikey"`
	Model    string `yaml:"model"`
}

func loadConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Platform == "" {
		cfg.Platform = PlatformDeepSeek
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	return cfg
}

func InitPlatform() handler.Handler {
	cfg := loadConfig()
	switch cfg.Platform {
	case PlatformZhipu:
		h, err := zhipu.NewHandler(cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return h
	default:
		return openai.NewHandler(cfg.BaseURL, cfg.APIKey)
	}
}

func InitDefaultModel() service.DefaultModel {
	return service.DefaultModel(loadConfig().Model)
}

// InitRootHandler log -> config -> record -> platform
func InitRootHandler(logBuilder *log.HandlerBuilder,
	cfgBuilder *config.HandlerBuilder,
	recordBuilder *record.HandlerBuilder,
	// platform 就是真正的出口
	platform handler.Handler) handler.Handler {
	return handler.NewCompositionHandler([]handler.Builder{logBuilder, cfgBuilder, recordBuilder}, platform)
}

// InitConfigService 顺便把缺失的默认配置写进去
func InitConfigService(repo repository.ConfigRepository, model service.DefaultModel) ConfigService {
	svc := service.NewConfigService(repo, model)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.InitDefaults(ctx); err != nil {
		elog.DefaultLogger.Error("初始化 AI 默认配置失败", elog.FieldErr(err))
	}
	return svc
}

func initConfigDAO(db *egorm.Component) dao.ConfigDAO {
	InitTablesOnce(db)
	return dao.NewGORMConfigDAO(db)
}

func initRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTablesOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}
