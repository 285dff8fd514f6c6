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

	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = domain.ErrInvalidInput
	ErrNotFound     = domain.ErrNotFound
)

type Entity interface {
	Validate() error
}

// ContentService 展示内容的后台维护和前台列表
type ContentService[T Entity] interface {
	Save(ctx context.Context, t T) (int64, error)
	Detail(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, q domain.Query) ([]T, int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type (
	ProjectService     ContentService[domain.Project]
	ServiceItemService ContentService[domain.ServiceItem]
	TestimonialService ContentService[domain.Testimonial]
	CaseStudyService   ContentService[domain.CaseStudy]
)

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &contentService[domain.Project]{repo: repo}
}

func NewServiceItemService(repo repository.ServiceItemRepository) ServiceItemService {
	return &contentService[domain.ServiceItem]{repo: repo}
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &contentService[domain.Testimonial]{repo: repo}
}

func NewCaseStudyService(repo repository.CaseStudyRepository) CaseStudyService {
	return &contentService[domain.CaseStudy]{repo: repo}
}

type contentService[T Entity] struct {
	repo repository.Repository[T]
}

func (s *contentService[T]) Save(ctx context.Context, t T) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, t)
}

func (s *contentService[T]) Detail(ctx context.Context, id int64) (T, error) {
	t, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return t, ErrNotFound
	}
	return t, err
}

func (s *contentService[T]) List(ctx context.Context, q domain.Query) ([]T, int64, error) {
	q = q.Normalize()
	var (
		eg    errgroup.Group
		res   []T
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.List(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		return err
	})
	return res, total, eg.Wait()
}

func (s *contentService[T]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, domain.Query{})
}

func (s *contentService[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
