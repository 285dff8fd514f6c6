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

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("展示内容不完整")
	ErrNotFound     = errors.New("展示内容不存在")
)

type Project struct {
	Id             int64
	Title          string
	Client         string
	Category       string
	Description    string
	Technologies   []string
	ImageURL       string
	ProjectURL     string
	CompletionDate time.Time
	Featured       bool
	Ctime          time.Time
	Utime          time.Time
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: 缺少 title", ErrInvalidInput)
	}
	return nil
}

// ServiceItem 公司对外提供的服务
type ServiceItem struct {
	Id           int64
	Title        string
	Description  string
	Icon         string
	Features     []string
	DisplayOrder int
	Featured     bool
	Ctime        time.Time
	Utime        time.Time
}

func (s ServiceItem) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: 缺少 title", ErrInvalidInput)
	}
	return nil
}

type Testimonial struct {
	Id            int64
	ClientName    string
	ClientCompany string
	ClientRole    string
	Content       string
	// 1 到 5 星
	Rating    int
	AvatarURL string
	Featured  bool
	Ctime     time.Time
	Utime     time.Time
}

func (t Testimonial) Validate() error {
	switch {
	case strings.TrimSpace(t.ClientName) == "":
		return fmt.Errorf("%w: 缺少 client_name", ErrInvalidInput)
	case strings.TrimSpace(t.Content) == "":
		return fmt.Errorf("%w: 缺少 content", ErrInvalidInput)
	case t.Rating < 1 || t.Rating > 5:
		return fmt.Errorf("%w: rating %d 不在 1 到 5 之间", ErrInvalidInput, t.Rating)
	}
	return nil
}

type CaseStudy struct {
	Id           int64
	Title        string
	Client       string
	Industry     string
	Challenge    string
	Solution     string
	Results      string
	Technologies []string
	ImageURL     string
	Featured     bool
	Ctime        time.Time
	Utime        time.Time
}

func (c CaseStudy) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: 缺少 title", ErrInvalidInput)
	}
	return nil
}

// Home 首页上展示的内容
type Home struct {
	Services     []ServiceItem
	Testimonials []Testimonial
	Projects     []Project
}

// Counts 后台仪表盘使用
type Counts struct {
	Projects     int64
	Services     int64
	Testimonials int64
	CaseStudies  int64
}
