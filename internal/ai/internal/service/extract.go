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
	"fmt"
	"strings"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mastersolis/internal/pkg/doctext"
)

//go:generate mockgen -source=./extract.go -destination=../../mocks/extract.mock.go -package=aimocks ExtractService
type ExtractService interface {
	// ExtractResume 把简历转成结构化数据，不支持的格式返回 doctext.ErrUnsupportedType
	ExtractResume(ctx context.Context, file domain.ResumeFile) (domain.ResumeData, error)
}

type extractService struct {
	llmSvc llm.Service
	// 送进大模型的最长字符数
	maxChars int
	textOf   func(filename string, data []byte) (string, error)
}

func NewExtractService(llmSvc llm.Service) ExtractService {
	return &extractService{
		llmSvc:   llmSvc,
		maxChars: 60000,
		textOf:   doctext.Extract,
	}
}

func (s *extractService) ExtractResume(ctx context.Context, file domain.ResumeFile) (domain.ResumeData, error) {
	text, err := s.textOf(file.Name, file.Data)
	if err != nil {
		return domain.ResumeData{}, err
	}
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:   domain.BizResumeExtract,
		Input: []string{truncate(text, s.maxChars)},
	})
	if err != nil {
		return domain.ResumeData{}, fmt.Errorf("抽取简历信息失败: %w", err)
	}
	var data domain.ResumeData
	if err = UnmarshalAnswer(resp.Answer, &data); err != nil {
		return domain.ResumeData{}, err
	}
	data.Skills = cleanList(data.Skills)
	data.Certifications = cleanList(data.Certifications)
	return data, nil
}

func cleanList(src []string) []string {
	res := make([]string, 0, len(src))
	for _, s := range src {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}
