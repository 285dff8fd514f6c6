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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/pkg/errors"
)

var ErrConfigNotFound = errors.New("缓存里面没有这个配置")

type ConfigCache interface {
	Get(ctx context.Context, biz string) (domain.BizConfig, error)
	Set(ctx context.Context, cfg domain.BizConfig) error
	Delete(ctx context.Context, biz string) error
}

type ConfigECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewConfigECache(ec ecache.Cache) ConfigCache {
	return &ConfigECache{
		ec: &ecache.NamespaceCache{
			Namespace: "ai:",
			C:         ec,
		},
		expiration: time.Hour,
	}
}

func (c *ConfigECache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	val := c.ec.Get(ctx, c.key(biz))
	if val.KeyNotFound() {
		return domain.BizConfig{}, ErrConfigNotFound
	}
	if val.Err != nil {
		return domain.BizConfig{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var cfg domain.BizConfig
	err := val.JSONScan(&cfg)
	return cfg, errors.Wrap(err, "反序列化配置失败")
}

func (c *ConfigECache) Set(ctx context.Context, cfg domain.BizConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "序列化配置失败")
	}
	return c.ec.Set(ctx, c.key(cfg.Biz), string(data), c.expiration)
}

func (c *ConfigECache) Delete(ctx context.Context, biz string) error {
	_, err := c.ec.Delete(ctx, c.key(biz))
	return err
}

func (c *ConfigECache) key(biz string) string {
	return fmt.Sprintf("config:%s", biz)
}
