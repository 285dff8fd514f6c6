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
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/event"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPost       = errors.New("文章信息不合法")
	ErrPostNotFound      = errors.New("文章不存在")
	ErrAIFailed          = errors.New("AI 生成失败")
	ErrSummaryInProgress = errors.New("摘要正在生成")
)

type Stats struct {
	Total     int64
	Published int64
}

// Locker 同一个 key 同一时刻只允许一个请求
type Locker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=./post.go -package=blogmocks -destination=../../mocks/post.mock.go Service
type Service interface {
	// Save 新建的时候如果有正文，没有摘要，会顺便生成摘要和 SEO 描述
	Save(ctx context.Context, post domain.Post) (int64, error)
	// Generate 根据标题生成 markdown 格式的正文
	Generate(ctx context.Context, title string) (string, error)
	Detail(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Post, int64, error)
	Delete(ctx context.Context, id int64) error

	// PublishedList 博客列表页，按照发布时间倒序
	PublishedList(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Post, int64, error)
	Categories(ctx context.Context) ([]string, error)
	// View 阅读文章，浏览量加一
	View(ctx context.Context, id int64) (domain.Post, error)
	// Summary 返回 AI 摘要，第一次访问的时候生成
	Summary(ctx context.Context, id int64) (string, error)

	Stats(ctx context.Context) (Stats, error)
	ResyncSearch(ctx context.Context) error
}

type service struct {
	repo     repository.PostRepository
	llmSvc   ai.LLMService
	producer mqx.Producer[event.SyncEvent]
	locker   Locker
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.PostRepository,
	llmSvc ai.LLMService,
	producer mqx.Producer[event.SyncEvent],
	locker Locker) Service {
	return &service{
		repo:     repo,
		llmSvc:   llmSvc,
		producer: producer,
		locker:   locker,
		now:      time.Now,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("blog")),
	}
}

func (s *service) Save(ctx context.Context, post domain.Post) (int64, error) {
	post.Normalize()
	if post.Title == "" {
		return 0, fmt.Errorf("%w: 标题不能为空", ErrInvalidPost)
	}
	if post.Id > 0 {
		err := s.mergeExisting(ctx, &post)
		if err != nil {
			return 0, err
		}
	} else {
		if post.PublishDate.IsZero() {
			post.PublishDate = s.now()
		}
		if post.Content != "" && post.AISummary == "" {
			s.fillSEO(ctx, &post)
		}
	}
	id, err := s.repo.Save(ctx, post)
	if err != nil {
		return 0, err
	}
	post.Id = id
	s.syncToSearch(ctx, event.NewSyncEvent(post))
	return id, nil
}

// mergeExisting 后台编辑的时候不会带上 AI 生成的字段，保留原来的
func (s *service) mergeExisting(ctx context.Context, post *domain.Post) error {
	old, err := s.repo.FindById(ctx, post.Id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if post.AISummary == "" {
		post.AISummary = old.AISummary
	}
	if post.SEODescription == "" {
		post.SEODescription = old.SEODescription
	}
	if post.PublishDate.IsZero() {
		post.PublishDate = old.PublishDate
	}
	return nil
}

type seoAnswer struct {
	Summary        string `json:"summary"`
	SEODescription string `json:"seo_description"`
}

// fillSEO 失败了只记录日志，文章照样保存
func (s *service) fillSEO(ctx context.Context, post *domain.Post) {
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizBlogSEO,
		Input: []string{post.Title, post.ContentPreview(domain.SEOContentLimit)},
	})
	if err != nil {
		s.logger.Warn("生成摘要和 SEO 描述失败", elog.String("title", post.Title), elog.FieldErr(err))
		return
	}
	var res seoAnswer
	err = ai.UnmarshalAnswer(resp.Answer, &res)
	if err != nil {
		s.logger.Warn("解析摘要和 SEO 描述失败", elog.String("title", post.Title), elog.FieldErr(err))
		return
	}
	post.AISummary = strings.TrimSpace(res.Summary)
	post.SEODescription = strings.TrimSpace(res.SEODescription)
}

func (s *service) Generate(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: 标题不能为空", ErrInvalidPost)
	}
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizBlogGenerate,
		Input: []string{title},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAIFailed, err)
	}
	content := strings.TrimSpace(resp.Answer)
	if content == "" {
		return "", fmt.Errorf("%w: 内容为空", ErrAIFailed)
	}
	return content, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Post, error) {
	post, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return domain.Post{}, ErrPostNotFound
	}
	return post, err
}

func (s *service) List(ctx context.Context, offset int, limit int) ([]domain.Post, int64, error) {
	var (
		eg    errgroup.Group
		posts []domain.Post
		total int64
	)
	eg.Go(func() error {
		var err error
		posts, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return posts, total, eg.Wait()
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.syncToSearch(ctx, event.NewDeleteEvent(id))
	return nil
}

func (s *service) PublishedList(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Post, int64, error) {
	var (
		eg    errgroup.Group
		posts []domain.Post
		total int64
	)
	eg.Go(func() error {
		var err error
		posts, err = s.repo.ListPublished(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountPublished(ctx, filter)
		return err
	})
	return posts, total, eg.Wait()
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) View(ctx context.Context, id int64) (domain.Post, error) {
	ok, err := s.repo.IncrViews(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	// 没有更新说明文章不存在或者没有发布
	if !ok {
		return domain.Post{}, ErrPostNotFound
	}
	return s.Detail(ctx, id)
}

func (s *service) Summary(ctx context.Context, id int64) (string, error) {
	post, err := s.publishedDetail(ctx, id)
	if err != nil {
		return "", err
	}
	if post.AISummary != "" {
		return post.AISummary, nil
	}
	var summary string
	err = s.locker.Do(ctx, fmt.Sprintf("blog:summary:%d", id), func(ctx context.Context) error {
		var err error
		summary, err = s.summarize(ctx, id)
		return err
	})
	if errors.Is(err, flight.ErrInFlight) {
		return "", ErrSummaryInProgress
	}
	return summary, err
}

func (s *service) summarize(ctx context.Context, id int64) (string, error) {
	// 拿到锁之后再查一次，别人可能已经生成好了
	post, err := s.Detail(ctx, id)
	if err != nil {
		return "", err
	}
	if post.AISummary != "" {
		return post.AISummary, nil
	}
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizBlogSummary,
		Input: []string{post.Content},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAIFailed, err)
	}
	summary := strings.TrimSpace(resp.Answer)
	if summary == "" {
		return "", fmt.Errorf("%w: 摘要为空", ErrAIFailed)
	}
	ok, err := s.repo.SetSummaryIfEmpty(ctx, id, summary)
	if err != nil {
		return "", err
	}
	if ok {
		return summary, nil
	}
	// 已经有人写入了，以数据库里面的为准
	post, err = s.Detail(ctx, id)
	if err != nil {
		return "", err
	}
	return post.AISummary, nil
}

func (s *service) publishedDetail(ctx context.Context, id int64) (domain.Post, error) {
	post, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if !post.Published {
		return domain.Post{}, ErrPostNotFound
	}
	return post, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	var (
		eg  errgroup.Group
		res Stats
	)
	eg.Go(func() error {
		var err error
		res.Total, err = s.repo.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Published, err = s.repo.CountPublished(ctx, domain.Filter{})
		return err
	})
	return res, eg.Wait()
}

func (s *service) ResyncSearch(ctx context.Context) error {
	const batchSize = 100
	for offset := 0; ; offset += batchSize {
		posts, err := s.repo.List(ctx, offset, batchSize)
		if err != nil {
			return err
		}
		for _, post := range posts {
			err = s.producer.Produce(ctx, event.NewSyncEvent(post))
			if err != nil {
				return err
			}
		}
		if len(posts) < batchSize {
			return nil
		}
	}
}

func (s *service) syncToSearch(ctx context.Context, evt event.SyncEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("同步文章到搜索失败",
			elog.Int64("id", evt.BizID),
			elog.FieldErr(err))
	}
}
