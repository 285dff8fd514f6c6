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

package jobposting

import (
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/service"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	JobPosting     = domain.JobPosting
	Status         = domain.Status
	EmploymentType = domain.EmploymentType
	Service        = service.Service
	Stats          = service.Stats
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
)

const (
	StatusActive = domain.StatusActive
	StatusClosed = domain.StatusClosed
	StatusDraft  = domain.StatusDraft
)

// ErrJobNotFound 职位不存在，或者对外不可见
var ErrJobNotFound = service.ErrJobNotFound
