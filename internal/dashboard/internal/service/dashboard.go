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

	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/showcase"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Overview 各个模块的数量，以及最近的申请和留言
	Overview(ctx context.Context) (domain.Overview, error)
}

type service struct {
	jobSvc      jobposting.Service
	appSvc      application.Service
	blogSvc     blog.Service
	contactSvc  contact.Service
	showcaseSvc showcase.Service
}

func NewService(jobSvc jobposting.Service,
	appSvc application.Service,
	blogSvc blog.Service,
	contactSvc contact.Service,
	showcaseSvc showcase.Service) Service {
	return &service{
		jobSvc:      jobSvc,
		appSvc:      appSvc,
		blogSvc:     blogSvc,
		contactSvc:  contactSvc,
		showcaseSvc: showcaseSvc,
	}
}

func (s *service) Overview(ctx context.Context) (domain.Overview, error) {
	var (
		eg  errgroup.Group
		res domain.Overview
	)
	eg.Go(func() error {
		st, err := s.jobSvc.Stats(ctx)
		res.Stats.Jobs, res.Stats.ActiveJobs = st.Total, st.Active
		return err
	})
	eg.Go(func() error {
		st, err := s.appSvc.Stats(ctx)
		res.Stats.Applications, res.Stats.NewApplications = st.Total, st.New
		return err
	})
	eg.Go(func() error {
		st, err := s.blogSvc.Stats(ctx)
		res.Stats.BlogPosts, res.Stats.PublishedPosts = st.Total, st.Published
		return err
	})
	eg.Go(func() error {
		st, err := s.contactSvc.Stats(ctx)
		res.Stats.Contacts, res.Stats.NewContacts = st.Total, st.New
		return err
	})
	eg.Go(func() error {
		cnt, err := s.showcaseSvc.Counts(ctx)
		res.Stats.Projects = cnt.Projects
		res.Stats.Services = cnt.Services
		res.Stats.Testimonials = cnt.Testimonials
		res.Stats.CaseStudies = cnt.CaseStudies
		return err
	})
	eg.Go(func() error {
		var err error
		res.RecentApplications, _, err = s.appSvc.List(ctx, application.Filter{}, 0, domain.RecentSize)
		return err
	})
	eg.Go(func() error {
		var err error
		res.RecentContacts, _, err = s.contactSvc.List(ctx, "", 0, domain.RecentSize)
		return err
	})
	return res, eg.Wait()
}
