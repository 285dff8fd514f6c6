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
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
)

const (
	ApplicationTopic = "application_events"

	TypeCreated = "created"
)

// ApplicationEvent 通知招聘团队用的
type ApplicationEvent struct {
	Type          string `json:"type"`
	ApplicationId int64  `json:"applicationId"`
	JobId         int64  `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	// 没有评分的时候为 nil
	Score   *int   `json:"score,omitempty"`
	Summary string `json:"summary,omitempty"`
	Ctime   int64  `json:"ctime"`
}

func NewCreatedEvent(app domain.Application) ApplicationEvent {
	evt := ApplicationEvent{
		Type:          TypeCreated,
		ApplicationId: app.Id,
		JobId:         app.JobId,
		JobTitle:      app.JobTitle,
		FullName:      app.FullName,
		Email:         app.Email,
		Phone:         app.Phone,
		Ctime:         app.Ctime.UnixMilli(),
	}
	if app.Assessment != nil {
		score := app.Assessment.Score
		evt.Score = &score
		evt.Summary = app.Assessment.Summary
	}
	return evt
}
