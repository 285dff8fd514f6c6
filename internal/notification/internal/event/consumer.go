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
	"time"

	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/service"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const groupID = "notification"

type ApplicationConsumer struct {
	svc      service.Service
	consumer *mqx.JSONConsumer[application.ApplicationEvent]
}

func NewApplicationConsumer(svc service.Service, q mq.MQ) (*ApplicationConsumer, error) {
	c := &ApplicationConsumer{svc: svc}
	consumer, err := mqx.NewJSONConsumer[application.ApplicationEvent](q, application.ApplicationTopic, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

// Handle 目前只关心新提交的申请
func (c *ApplicationConsumer) Handle(ctx context.Context, evt application.ApplicationEvent) error {
	if evt.Type != application.TypeCreated {
		return nil
	}
	return c.svc.NotifyNewApplication(ctx, domain.NewApplication{
		ApplicationId: evt.ApplicationId,
		JobTitle:      evt.JobTitle,
		FullName:      evt.FullName,
		Email:         evt.Email,
		Phone:         evt.Phone,
		Score:         evt.Score,
		Summary:       evt.Summary,
		Ctime:         time.UnixMilli(evt.Ctime),
	})
}

func (c *ApplicationConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *ApplicationConsumer) Stop(ctx context.Context) error {
	return c.consumer.Stop(ctx)
}
