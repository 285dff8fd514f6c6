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
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/search/internal/repository/dao"
)

//go:generate mockgen -source=./search.go -package=repomocks -destination=mocks/search.mock.go SearchRepository
type SearchRepository interface {
	SearchJobs(ctx context.Context, keyword string, offset, limit int) ([]domain.Job, int64, error)
	SearchBlogs(ctx context.Context, keyword string, offset, limit int) ([]domain.Blog, int64, error)
}

type searchRepository struct {
	jobDAO  dao.JobDAO
	blogDAO dao.BlogDAO
}

func NewSearchRepository(jobDAO dao.JobDAO, blogDAO dao.BlogDAO) SearchRepository {
	return &searchRepository{
		jobDAO:  jobDAO,
		blogDAO: blogDAO,
	}
}

func (s *searchRepository) SearchJobs(ctx context.Context, keyword string, offset, limit int) ([]domain.Job, int64, error) {
	jobs, total, err := s.jobDAO.Search(ctx, keyword, offset, limit)
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return domain.Job{
			Id:             src.Id,
			Title:          src.Title,
			Department:     src.Department,
			Location:       src.Location,
			EmploymentType: src.EmploymentType,
			Skills:         src.Skills,
			PostedDate:     time.UnixMilli(src.PostedDate),
		}
	}), total, err
}

func (s *searchRepository) SearchBlogs(ctx context.Context, keyword string, offset, limit int) ([]domain.Blog, int64, error) {
	blogs, total, err := s.blogDAO.Search(ctx, keyword, offset, limit)
	return slice.Map(blogs, func(idx int, src dao.Blog) domain.Blog {
		return domain.Blog{
			Id:          src.Id,
			Title:       src.Title,
			Excerpt:     src.Excerpt,
			Category:    src.Category,
			Tags:        src.Tags,
			Author:      src.Author,
			PublishDate: time.UnixMilli(src.PublishDate),
		}
	}), total, err
}
