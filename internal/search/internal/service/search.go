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

	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/search/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidQuery = errors.New("搜索条件错误")

//go:generate mockgen -source=./search.go -package=searchmocks -destination=../../mocks/search.mock.go SearchService
type SearchService interface {
	// Search 只能搜到招聘中的职位和已经发布的文章
	Search(ctx context.Context, q domain.Query) (domain.Result, error)
}

type searchService struct {
	repo repository.SearchRepository
}

func NewSearchService(repo repository.SearchRepository) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) Search(ctx context.Context, q domain.Query) (domain.Result, error) {
	q = q.Normalize()
	if !q.Valid() {
		return domain.Result{}, fmt.Errorf("%w: keyword=%q biz=%q", ErrInvalidQuery, q.Keyword, q.Biz)
	}
	var (
		eg  errgroup.Group
		res domain.Result
	)
	if q.Biz == domain.BizAll || q.Biz == domain.BizJob {
		eg.Go(func() error {
			var err error
			res.Jobs, res.JobTotal, err = s.repo.SearchJobs(ctx, q.Keyword, q.Offset, q.Limit)
			return err
		})
	}
	if q.Biz == domain.BizAll || q.Biz == domain.BizBlog {
		eg.Go(func() error {
			var err error
			res.Blogs, res.BlogTotal, err = s.repo.SearchBlogs(ctx, q.Keyword, q.Offset, q.Limit)
			return err
		})
	}
	return res, eg.Wait()
}
