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

package search

import (
	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/search/internal/event"
	"github.com/ecodeclub/mastersolis/internal/search/internal/service"
	"github.com/ecodeclub/mastersolis/internal/search/internal/web"
)

type Module struct {
	Svc       SearchService
	SyncSvc   SyncService
	Hdl       *Handler
	ResyncJob *ResyncJob
	c         *event.SyncConsumer
}

type (
	Query         = domain.Query
	Result        = domain.Result
	SearchService = service.SearchService
	SyncService   = service.SyncService
	ResyncJob     = service.ResyncJob
	Handler       = web.Handler
	SyncEvent     = event.SyncEvent
)

const (
	BizJob    = domain.BizJob
	BizBlog   = domain.BizBlog
	SyncTopic = event.SyncTopic
)
