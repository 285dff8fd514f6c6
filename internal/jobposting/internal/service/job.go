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

	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/event"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidJob  = errors.New("职位信息不合法")
	ErrJobNotFound = errors.New("职位不存在")
)

type Stats struct {
	Total  int64
	Active int64
}

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go Service
type Service interface {
	// Save 新建或者更新，第一次保存的时候没有指定发布时间就用当前时间
	Save(ctx context.Context, job domain.JobPosting) (int64, error)
	Detail(ctx context.Context, id int64) (domain.JobPosting, error)
	List(ctx context.Context, offset int, limit int) ([]domain.JobPosting, int64, error)
	Delete(ctx context.Context, id int64) error
	// Close 关闭职位，不再接受申请
	Close(ctx context.Context, id int64) error

	// ListActive 招聘页面用，只返回 Active 的职位
	ListActive(ctx context.Context, offset int, limit int) ([]domain.JobPosting, int64, error)
	// ActiveDetail 非 Active 的职位对外一律当作不存在
	ActiveDetail(ctx context.Context, id int64) (domain.JobPosting, error)
	Stats(ctx context.Context) (Stats, error)
	// ResyncSearch 把所有的职位重新同步到搜索
	ResyncSearch(ctx context.Context) error
}

type service struct {
	repo     repository.JobRepository
	producer mqx.Producer[event.SyncEvent]
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.JobRepository, producer mqx.Producer[event.SyncEvent]) Service {
	return &service{
		repo:     repo,
		producer: producer,
		now:      time.Now,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("jobposting")),
	}
}

func (s *service) Save(ctx context.Context, job domain.JobPosting) (int64, error) {
	job.Normalize()
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return 0, fmt.Errorf("%w: 标题不能为空", ErrInvalidJob)
	}
	if !job.EmploymentType.Valid() {
		return 0, fmt.Errorf("%w: 未知的用工类型 %q", ErrInvalidJob, job.EmploymentType)
	}
	if !job.Status.Valid() {
		return 0, fmt.Errorf("%w: 未知的状态 %q", ErrInvalidJob, job.Status)
	}
	if job.PostedDate.IsZero() {
		job.PostedDate = s.now()
		if job.Id > 0 {
			old, err := s.repo.FindById(ctx, job.Id)
			if err == nil {
				job.PostedDate = old.PostedDate
			} else if !errors.Is(err, repository.ErrJobNotFound) {
				return 0, err
			}
		}
	}
	id, err := s.repo.Save(ctx, job)
	if err != nil {
		return 0, err
	}
	job.Id = id
	s.syncToSearch(ctx, event.NewSyncEvent(job))
	return id, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.JobPosting, error) {
	job, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domain.JobPosting{}, ErrJobNotFound
	}
	return job, err
}

func (s *service) List(ctx context.Context, offset int, limit int) ([]domain.JobPosting, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.JobPosting
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.syncToSearch(ctx, event.NewDeleteEvent(id))
	return nil
}

func (s *service) Close(ctx context.Context, id int64) error {
	job, err := s.Detail(ctx, id)
	if err != nil {
		return err
	}
	if job.Status == domain.StatusClosed {
		return nil
	}
	err = s.repo.UpdateStatus(ctx, id, domain.StatusClosed)
	if err != nil {
		return err
	}
	job.Status = domain.StatusClosed
	s.syncToSearch(ctx, event.NewSyncEvent(job))
	return nil
}

func (s *service) ListActive(ctx context.Context, offset int, limit int) ([]domain.JobPosting, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.JobPosting
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByStatus(ctx, domain.StatusActive, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByStatus(ctx, domain.StatusActive)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) ActiveDetail(ctx context.Context, id int64) (domain.JobPosting, error) {
	job, err := s.Detail(ctx, id)
	if err != nil {
		return domain.JobPosting{}, err
	}
	if !job.Active() {
		return domain.JobPosting{}, ErrJobNotFound
	}
	return job, nil
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
		res.Active, err = s.repo.CountByStatus(ctx, domain.StatusActive)
		return err
	})
	return res, eg.Wait()
}

func (s *service) ResyncSearch(ctx context.Context) error {
	const batchSize = 100
	for offset := 0; ; offset += batchSize {
		jobs, err := s.repo.List(ctx, offset, batchSize)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			err = s.producer.Produce(ctx, event.NewSyncEvent(job))
			if err != nil {
				return err
			}
		}
		if len(jobs) < batchSize {
			return nil
		}
	}
}

// syncToSearch 同步失败不影响主流程，定时任务会兜底
func (s *service) syncToSearch(ctx context.Context, evt event.SyncEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("同步职位到搜索失败",
			elog.Int64("id", evt.BizID),
			elog.FieldErr(err))
	}
}
