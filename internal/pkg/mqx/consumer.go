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

package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 处理一条已经反序列化的消息
type Handler[T any] func(ctx context.Context, evt T) error

// JSONConsumer 消费 JSON 编码的消息，一次一条
type JSONConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   Handler[T]
	logger   *elog.Component
}

func NewJSONConsumer[T any](q mq.MQ, topic, group string, handle Handler[T]) (*JSONConsumer[T], error) {
	c, err := q.Consumer(topic, group)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &JSONConsumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("mqx"), elog.String("topic", topic)),
	}, nil
}

func (c *JSONConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

// Start 启动后台消费，ctx 结束之后退出
func (c *JSONConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err == nil {
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				c.logger.Info("消费者退出", elog.FieldErr(err))
				return
			}
			c.logger.Error("消费消息失败", elog.FieldErr(err))
		}
	}()
}

func (c *JSONConsumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}
