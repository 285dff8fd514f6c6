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

	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"golang.org/x/sync/errgroup"
)

// homeSize 首页每个区块展示的数量
const homeSize = 3

//go:generate mockgen -source=./showcase.go -package=showcasemocks -destination=../../mocks/showcase.mock.go Service
type Service interface {
	Home(ctx context.Context) (domain.Home, error)
	Counts(ctx context.Context) (domain.Counts, error)
}

type service struct {
	projects     ProjectService
	services     ServiceItemService
	testimonials TestimonialService
	caseStudies  CaseStudyService
}

func NewService(projects ProjectService,
	services ServiceItemService,
	testimonials TestimonialService,
	caseStudies CaseStudyService) Service {
	return &service{
		projects:     projects,
		services:     services,
		testimonials: testimonials,
		caseStudies:  caseStudies,
	}
}

func (s *service) Home(ctx context.Context) (domain.Home, error) {
	var (
		eg  errgroup.Group
		res domain.Home
	)
	eg.Go(func() error {
		var err error
		res.Services, _, err = s.services.List(ctx, domain.Query{Featured: true, Limit: homeSize})
		return err
	})
	eg.Go(func() error {
		var err error
		res.Testimonials, _, err = s.testimonials.List(ctx, domain.Query{Featured: true, Limit: homeSize})
		return err
	})
	eg.Go(func() error {
		var err error
		res.Projects, _, err = s.projects.List(ctx, domain.Query{
			Featured: true,
			Order:    domain.OrderNewest,
			Limit:    homeSize,
		})
		return err
	})
	return res, eg.Wait()
}

func (s *service) Counts(ctx context.Context) (domain.Counts, error) {
	var (
		eg  errgroup.Group
		res domain.Counts
	)
	eg.Go(func() error {
		var err error
		res.Projects, err = s.projects.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Services, err = s.services.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Testimonials, err = s.testimonials.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.CaseStudies, err = s.caseStudies.Count(ctx)
		return err
	})
	return res, eg.Wait()
}
