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

package application

import (
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/event"
	"github.com/ecodeclub/mastersolis/internal/application/internal/service"
	"github.com/ecodeclub/mastersolis/internal/application/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Application      = domain.Application
	AIAssessment     = domain.AIAssessment
	Filter           = domain.Filter
	Status           = domain.Status
	Service          = service.Service
	Stats            = service.Stats
	Config           = service.Config
	Handler          = web.Handler
	AdminHandler     = web.AdminHandler
	ApplicationEvent = event.ApplicationEvent
)

const (
	// ApplicationTopic 新的申请提交之后发送的事件
	ApplicationTopic = event.ApplicationTopic
	TypeCreated      = event.TypeCreated
	StatusNew        = domain.StatusNew
)
