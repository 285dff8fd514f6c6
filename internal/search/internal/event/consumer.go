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

package event

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mastersolis/internal/search/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	SyncTopic = "search_sync_events"
	groupID   = "search"
)

type SyncEvent struct {
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizID"`
	Deleted bool   `json:"deleted"`
	// Data 是业务方序列化好的文档
	Data string `json:"data"`
}

type SyncConsumer struct {
	svc      service.SyncService
	consumer *mqx.JSONConsumer[SyncEvent]
	logger   *elog.Component
}

func NewSyncConsumer(svc service.SyncService, q mq.MQ) (*SyncConsumer, error) {
	c := &SyncConsumer{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("search.sync")),
	}
	consumer, err := mqx.NewJSONConsumer[SyncEvent](q, SyncTopic, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (s *SyncConsumer) Handle(ctx context.Context, evt SyncEvent) error {
	var err error
	if evt.Deleted {
		err = s.svc.Delete(ctx, evt.Biz, evt.BizID)
	} else {
		err = s.svc.Input(ctx, evt.Biz, evt.BizID, evt.Data)
	}
	if err != nil {
		s.logger.Error("同步搜索文档失败",
			elog.String("biz", evt.Biz),
			elog.Int64("bizID", evt.BizID),
			elog.FieldErr(err))
		return fmt.Errorf("同步 %s/%d 失败: %w", evt.Biz, evt.BizID, err)
	}
	return nil
}

func (s *SyncConsumer) Start(ctx context.Context) {
	s.consumer.Start(ctx)
}

func (s *SyncConsumer) Stop(ctx context.Context) error {
	return s.consumer.Stop(ctx)
}
