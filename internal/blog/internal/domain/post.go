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
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
)

const (
	wordsPerMinute = 200
	// SEOContentLimit 生成摘要和 SEO 描述的时候只取正文的前面一部分
	SEOContentLimit = 500
)

type Post struct {
	Id      int64
	Title   string
	Excerpt string
	// markdown
	Content       string
	Category      string
	Tags          []string
	Author        string
	FeaturedImage string
	// 阅读时间，分钟
	ReadTime    int
	Published   bool
	PublishDate time.Time
	Views       int64
	// 只生成一次，之后一直用缓存的
	AISummary      string
	SEODescription string
	Ctime          time.Time
	Utime          time.Time
}

func (p *Post) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Tags = listx.Set(p.Tags)
	if p.ReadTime <= 0 {
		p.ReadTime = EstimateReadTime(p.Content)
	}
}

// ContentPreview 正文的前 n 个字符
func (p Post) ContentPreview(n int) string {
	if utf8.RuneCountInString(p.Content) <= n {
		return p.Content
	}
	return string([]rune(p.Content)[:n])
}

// EstimateReadTime 按照每分钟 200 个单词估算，至少一分钟
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Filter 博客列表页的搜索和分类筛选
type Filter struct {
	// 匹配标题或者摘要，不区分大小写
	Search string
	// 为空或者 all 表示全部分类
	Category string
}

func (f Filter) Normalize() Filter {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	if strings.EqualFold(f.Category, "all") {
		f.Category = ""
	}
	return f
}

// Match 和数据库里面的查询条件保持一致
func (f Filter) Match(p Post) bool {
	f = f.Normalize()
	if f.Category != "" && f.Category != p.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	kw := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.Title), kw) ||
		strings.Contains(strings.ToLower(p.Excerpt), kw)
}
