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
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrSuggestFailed = errors.New("生成简历建议失败")

var (
	//go:embed templates/resume.html
	templates    embed.FS
	resumeLayout = template.Must(template.ParseFS(templates, "templates/resume.html"))
)

//go:generate mockgen -source=./resume.go -package=resumemocks -destination=../../mocks/resume.mock.go Service
type Service interface {
	// Suggest 根据姓名、当前职位和技能给出简介、技能和动词建议
	Suggest(ctx context.Context, r domain.Resume) (domain.Suggestion, error)
	// Render 把简历渲染成可以下载的 HTML 文件，内容全部经过转义
	Render(ctx context.Context, r domain.Resume) (domain.Document, error)
}

type service struct {
	llmSvc  ai.LLMService
	timeout time.Duration
	logger  *elog.Component
}

func NewService(llmSvc ai.LLMService) Service {
	return &service{
		llmSvc:  llmSvc,
		timeout: 30 * time.Second,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("resume")),
	}
}

type suggestAnswer struct {
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	PowerWords []string `json:"power_words"`
}

func (s *service) Suggest(ctx context.Context, r domain.Resume) (domain.Suggestion, error) {
	if err := r.Validate(); err != nil {
		return domain.Suggestion{}, err
	}
	skills := "N/A"
	if len(r.Skills) > 0 {
		skills = strings.Join(listx.Set(r.Skills), ", ")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	tid := shortuuid.New()
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizResumeSuggest,
		Tid:   tid,
		Input: []string{r.FullName, r.CurrentRole(), skills},
	})
	if err != nil {
		s.logger.Error("生成简历建议失败", elog.String("tid", tid), elog.FieldErr(err))
		return domain.Suggestion{}, fmt.Errorf("%w: %w", ErrSuggestFailed, err)
	}
	var ans suggestAnswer
	if err = ai.UnmarshalAnswer(resp.Answer, &ans); err != nil {
		s.logger.Error("简历建议格式错误", elog.String("tid", tid), elog.FieldErr(err))
		return domain.Suggestion{}, fmt.Errorf("%w: %w", ErrSuggestFailed, err)
	}
	if strings.TrimSpace(ans.Summary) == "" {
		return domain.Suggestion{}, fmt.Errorf("%w: 简介为空", ErrSuggestFailed)
	}
	return domain.Suggestion{
		Summary:    strings.TrimSpace(ans.Summary),
		Skills:     listx.Set(ans.Skills),
		PowerWords: listx.Set(ans.PowerWords),
	}, nil
}

func (s *service) Render(ctx context.Context, r domain.Resume) (domain.Document, error) {
	if err := r.Validate(); err != nil {
		return domain.Document{}, err
	}
	r.Skills = listx.Set(r.Skills)
	r.Certifications = listx.Set(r.Certifications)
	var buf bytes.Buffer
	if err := resumeLayout.Execute(&buf, r); err != nil {
		return domain.Document{}, fmt.Errorf("渲染简历失败: %w", err)
	}
	return domain.Document{
		FileName: r.FileName(),
		Content:  buf.Bytes(),
	}, nil
}
