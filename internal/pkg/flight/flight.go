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

package flight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/elog"
)

// ErrInFlight 同一个 key 已经有一个请求在处理中
var ErrInFlight = errors.New("请求正在处理中")

// Guard 保证同一个 key 同一时刻最多只有一个请求在处理。
// 跨实例生效，依赖 Redis 的 SETNX。
type Guard struct {
	cache ecache.Cache
	// 锁的最长持有时间，防止进程崩溃之后 key 一直不释放
	ttl    time.Duration
	logger *elog.Component
}

func NewGuard(c ecache.Cache, ttl time.Duration) *Guard {
	return &Guard{
		cache: &ecache.NamespaceCache{
			Namespace: "flight:",
			C:         c,
		},
		ttl:    ttl,
		logger: elog.DefaultLogger.With(elog.FieldComponent("flight")),
	}
}

// Do 拿到 key 之后执行 fn，执行完毕释放。key 为空的时候不做任何限制。
func (g *Guard) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if key == "" {
		return fn(ctx)
	}
	ok, err := g.cache.SetNX(ctx, key, time.Now().UnixMilli(), g.ttl)
	if err != nil {
		return fmt.Errorf("获取 %s 失败: %w", key, err)
	}
	if !ok {
		return ErrInFlight
	}
	defer func() {
		// 原本的 ctx 可能已经过期了
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if _, err1 := g.cache.Delete(releaseCtx, key); err1 != nil {
			g.logger.Error("释放 key 失败", elog.String("key", key), elog.FieldErr(err1))
		}
	}()
	return fn(ctx)
}
