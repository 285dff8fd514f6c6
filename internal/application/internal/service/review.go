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
	"time"

	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	Total int64
	New   int64
}

//go:generate mockgen -source=./review.go -package=appmocks -destination=../../mocks/review.mock.go Service
type Service interface {
	List(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Application, int64, error)
	// Detail 简历链接替换成带签名的临时链接
	Detail(ctx context.Context, id int64) (domain.Application, error)
	// UpdateStatus 直接覆盖，返回更新之后重新查询的结果
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Application, error)
	// Export 导出筛选之后的全部申请，返回文件名和 CSV 内容
	Export(ctx context.Context, filter domain.Filter) (string, string, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo       repository.ApplicationRepository
	storageSvc storage.Service
	cfg        Config
	// 简历临时链接的有效期
	signTTL time.Duration
	now     func() time.Time
	logger  *elog.Component
}

func NewService(repo repository.ApplicationRepository, storageSvc storage.Service, cfg Config) Service {
	return &service{
		repo:       repo,
		storageSvc: storageSvc,
		cfg:        cfg,
		signTTL:    time.Hour,
		now:        time.Now,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("application")),
	}
}

func (s *service) List(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Application, int64, error) {
	if !filter.Valid() {
		return nil, 0, domain.ErrInvalidFilter
	}
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.List(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if app.ResumeURL != "" {
		signed, err := s.storageSvc.SignURL(ctx, app.ResumeURL, s.signTTL)
		if err != nil {
			s.logger.Warn("生成简历临时链接失败", elog.Int64("id", id), elog.FieldErr(err))
		} else {
			app.ResumeURL = signed
		}
	}
	return app, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	if s.cfg.StrictStatus {
		app, err := s.find(ctx, id)
		if err != nil {
			return domain.Application{}, err
		}
		if !app.Status.CanTransitionTo(status) {
			return domain.Application{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, app.Status, status)
		}
	}
	err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return domain.Application{}, domain.ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return s.find(ctx, id)
}

func (s *service) Export(ctx context.Context, filter domain.Filter) (string, string, error) {
	if !filter.Valid() {
		return "", "", domain.ErrInvalidFilter
	}
	const batchSize = 500
	var (
		apps  []domain.Application
		maxId int64
	)
	// 按照 id 游标翻页
	for {
		batch, err := s.repo.ListBefore(ctx, filter, maxId, batchSize)
		if err != nil {
			return "", "", err
		}
		apps = append(apps, batch...)
		if len(batch) < batchSize {
			break
		}
		maxId = batch[len(batch)-1].Id
	}
	// 数据库的查询和内存里的筛选语义一致，这里再过一遍
	apps = domain.FilterApplications(apps, filter.Normalize())
	now := s.now()
	return domain.ExportFilename(now), domain.ExportCSV(apps, now.Location()), nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	var (
		eg  errgroup.Group
		res Stats
	)
	eg.Go(func() error {
		var err error
		res.Total, err = s.repo.Count(ctx, domain.Filter{})
		return err
	})
	eg.Go(func() error {
		var err error
		res.New, err = s.repo.Count(ctx, domain.Filter{Status: domain.StatusNew.String()})
		return err
	})
	return res, eg.Wait()
}

func (s *service) find(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return domain.Application{}, domain.ErrApplicationNotFound
	}
	return app, err
}
