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

package repository

import (
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/repository/dao"
)

type (
	ProjectRepository     Repository[domain.Project]
	ServiceItemRepository Repository[domain.ServiceItem]
	TestimonialRepository Repository[domain.Testimonial]
	CaseStudyRepository   Repository[domain.CaseStudy]
)

func NewProjectRepository(d dao.DAO[dao.Project]) ProjectRepository {
	return &crudRepository[domain.Project, dao.Project]{
		dao: d,
		toEntity: func(p domain.Project) dao.Project {
			return dao.Project{
				Id:             p.Id,
				Title:          p.Title,
				Client:         p.Client,
				Category:       p.Category,
				Description:    p.Description,
				Technologies:   jsonList(p.Technologies),
				ImageURL:       p.ImageURL,
				ProjectURL:     p.ProjectURL,
				CompletionDate: millis(p.CompletionDate),
				Featured:       p.Featured,
			}
		},
		toDomain: func(p dao.Project) domain.Project {
			return domain.Project{
				Id:             p.Id,
				Title:          p.Title,
				Client:         p.Client,
				Category:       p.Category,
				Description:    p.Description,
				Technologies:   p.Technologies.Val,
				ImageURL:       p.ImageURL,
				ProjectURL:     p.ProjectURL,
				CompletionDate: fromMillis(p.CompletionDate),
				Featured:       p.Featured,
				Ctime:          time.UnixMilli(p.Ctime),
				Utime:          time.UnixMilli(p.Utime),
			}
		},
	}
}

func NewServiceItemRepository(d dao.DAO[dao.ServiceItem]) ServiceItemRepository {
	return &crudRepository[domain.ServiceItem, dao.ServiceItem]{
		dao: d,
		toEntity: func(s domain.ServiceItem) dao.ServiceItem {
			return dao.ServiceItem{
				Id:           s.Id,
				Title:        s.Title,
				Description:  s.Description,
				Icon:         s.Icon,
				Features:     jsonList(s.Features),
				DisplayOrder: s.DisplayOrder,
				Featured:     s.Featured,
			}
		},
		toDomain: func(s dao.ServiceItem) domain.ServiceItem {
			return domain.ServiceItem{
				Id:           s.Id,
				Title:        s.Title,
				Description:  s.Description,
				Icon:         s.Icon,
				Features:     s.Features.Val,
				DisplayOrder: s.DisplayOrder,
				Featured:     s.Featured,
				Ctime:        time.UnixMilli(s.Ctime),
				Utime:        time.UnixMilli(s.Utime),
			}
		},
	}
}

func NewTestimonialRepository(d dao.DAO[dao.Testimonial]) TestimonialRepository {
	return &crudRepository[domain.Testimonial, dao.Testimonial]{
		dao: d,
		toEntity: func(t domain.Testimonial) dao.Testimonial {
			return dao.Testimonial{
				Id:            t.Id,
				ClientName:    t.ClientName,
				ClientCompany: t.ClientCompany,
				ClientRole:    t.ClientRole,
				Content:       t.Content,
				Rating:        t.Rating,
				AvatarURL:     t.AvatarURL,
				Featured:      t.Featured,
			}
		},
		toDomain: func(t dao.Testimonial) domain.Testimonial {
			return domain.Testimonial{
				Id:            t.Id,
				ClientName:    t.ClientName,
				ClientCompany: t.ClientCompany,
				ClientRole:    t.ClientRole,
				Content:       t.Content,
				Rating:        t.Rating,
				AvatarURL:     t.AvatarURL,
				Featured:      t.Featured,
				Ctime:         time.UnixMilli(t.Ctime),
				Utime:         time.UnixMilli(t.Utime),
			}
		},
	}
}

func NewCaseStudyRepository(d dao.DAO[dao.CaseStudy]) CaseStudyRepository {
	return &crudRepository[domain.CaseStudy, dao.CaseStudy]{
		dao: d,
		toEntity: func(c domain.CaseStudy) dao.CaseStudy {
			return dao.CaseStudy{
				Id:           c.Id,
				Title:        c.Title,
				Client:       c.Client,
				Industry:     c.Industry,
				Challenge:    c.Challenge,
				Solution:     c.Solution,
				Results:      c.Results,
				Technologies: jsonList(c.Technologies),
				ImageURL:     c.ImageURL,
				Featured:     c.Featured,
			}
		},
		toDomain: func(c dao.CaseStudy) domain.CaseStudy {
			return domain.CaseStudy{
				Id:           c.Id,
				Title:        c.Title,
				Client:       c.Client,
				Industry:     c.Industry,
				Challenge:    c.Challenge,
				Solution:     c.Solution,
				Results:      c.Results,
				Technologies: c.Technologies.Val,
				ImageURL:     c.ImageURL,
				Featured:     c.Featured,
				Ctime:        time.UnixMilli(c.Ctime),
				Utime:        time.UnixMilli(c.Utime),
			}
		},
	}
}

func jsonList(src []string) sqlx.JsonColumn[[]string] {
	src = listx.Set(src)
	return sqlx.JsonColumn[[]string]{Valid: len(src) > 0, Val: src}
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
