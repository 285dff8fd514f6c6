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

package ai

import (
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/web"
)

type Module struct {
	Svc        LLMService
	ExtractSvc ExtractService
	ConfigSvc  ConfigService
	AdminHdl   *AdminHandler
}

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service
type ExtractService = service.ExtractService
type ConfigService = service.ConfigService
type ResumeData = domain.ResumeData
type ResumeFile = domain.ResumeFile
type AdminHandler = web.AdminHandler

const (
	BizResumeExtract    = domain.BizResumeExtract
	BizApplicationScore = domain.BizApplicationScore
	BizApplicationEmail = domain.BizApplicationEmail
	BizBlogSummary      = domain.BizBlogSummary
	BizBlogSEO          = domain.BizBlogSEO
	BizBlogGenerate     = domain.BizBlogGenerate
	BizContactEmail     = domain.BizContactEmail
	BizChat             = domain.BizChat
	BizResumeSuggest    = domain.BizResumeSuggest
)

var (
	ErrMalformedAnswer = service.ErrMalformedAnswer
	// UnmarshalAnswer 把大模型的 JSON 回答解析到 v
	UnmarshalAnswer = service.UnmarshalAnswer
)
