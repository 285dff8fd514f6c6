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
	"fmt"
	"time"

	"github.com/ecodeclub/mastersolis/internal/notification/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/robot"
	"github.com/ecodeclub/mastersolis/internal/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

const sendTimeout = 10 * time.Second

//go:generate mockgen -source=./notification.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	// NotifyNewApplication 群机器人和短信互不影响，两者的错误合并返回
	NotifyNewApplication(ctx context.Context, app domain.NewApplication) error
}

type service struct {
	robot     robot.Robot
	smsClient client.Client
	cfg       domain.Config
	logger    *elog.Component
}

func NewService(r robot.Robot, smsClient client.Client, cfg domain.Config) Service {
	return &service{
		robot:     r,
		smsClient: smsClient,
		cfg:       cfg,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("notification")),
	}
}

func (s *service) NotifyNewApplication(ctx context.Context, app domain.NewApplication) error {
	var errs []error
	if err := s.sendRobot(ctx, app); err != nil {
		s.logger.Error("发送群机器人通知失败",
			elog.Int64("applicationId", app.ApplicationId),
			elog.FieldErr(err))
		errs = append(errs, err)
	}
	if app.HighScore(s.cfg.ScoreThreshold) && s.cfg.SMSEnabled() {
		if err := s.sendSMS(ctx, app); err != nil {
			s.logger.Error("发送短信通知失败",
				elog.Int64("applicationId", app.ApplicationId),
				elog.FieldErr(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *service) sendRobot(ctx context.Context, app domain.NewApplication) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return s.robot.SendMarkdown(ctx, app.Markdown())
}

func (s *service) sendSMS(ctx context.Context, app domain.NewApplication) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	resp, err := s.smsClient.Send(ctx, client.SendReq{
		PhoneNumbers:  s.cfg.Phones,
		TemplateID:    s.cfg.SMSTemplateID,
		TemplateParam: app.SMSParams(),
	})
	if err != nil {
		return err
	}
	for phone, status := range resp.PhoneNumbers {
		if status.Code != client.OK {
			return fmt.Errorf("%w: %s %s %s", client.ErrSendFailed, phone, status.Code, status.Message)
		}
	}
	return nil
}
