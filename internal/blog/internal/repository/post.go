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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository/dao"
)

var ErrPostNotFound = errors.New("文章不存在")

//go:generate mockgen -source=./post.go -package=repomocks -destination=mocks/post.mock.go PostRepository
type PostRepository interface {
	Save(ctx context.Context, post domain.Post) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Post, error)
	Count(ctx context.Context) (int64, error)
	ListPublished(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Post, error)
	CountPublished(ctx context.Context, filter domain.Filter) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	IncrViews(ctx context.Context, id int64) (bool, error)
	SetSummaryIfEmpty(ctx context.Context, id int64, summary string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	dao dao.PostDAO
}

func NewPostRepository(d dao.PostDAO) PostRepository {
	return &postRepository{dao: d}
}

func (r *postRepository) Save(ctx context.Context, post domain.Post) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(post))
}

func (r *postRepository) FindById(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Post{}, ErrPostNotFound
	}
	return r.toDomain(post), err
}

func (r *postRepository) List(ctx context.Context, offset int, limit int) ([]domain.Post, error) {
	posts, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(posts), err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *postRepository) ListPublished(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Post, error) {
	posts, err := r.dao.ListPublished(ctx, r.toDAOFilter(filter), offset, limit)
	return r.toDomains(posts), err
}

func (r *postRepository) CountPublished(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.dao.CountPublished(ctx, r.toDAOFilter(filter))
}

func (r *postRepository) Categories(ctx context.Context) ([]string, error) {
	return r.dao.Categories(ctx)
}

func (r *postRepository) IncrViews(ctx context.Context, id int64) (bool, error) {
	return r.dao.IncrViews(ctx, id)
}

func (r *postRepository) SetSummaryIfEmpty(ctx context.Context, id int64, summary string) (bool, error) {
	return r.dao.SetSummaryIfEmpty(ctx, id, summary)
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *postRepository) toDAOFilter(f domain.Filter) dao.Filter {
	f = f.Normalize()
	return dao.Filter{
		Search:   f.Search,
		Category: f.Category,
	}
}

func (r *postRepository) toDomains(posts []dao.Post) []domain.Post {
	return slice.Map(posts, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	})
}

func (r *postRepository) toEntity(post domain.Post) dao.Post {
	return dao.Post{
		Id:             post.Id,
		Title:          post.Title,
		Excerpt:        post.Excerpt,
		Content:        post.Content,
		Category:       post.Category,
		Tags:           sqlx.JsonColumn[[]string]{Valid: true, Val: post.Tags},
		Author:         post.Author,
		FeaturedImage:  post.FeaturedImage,
		ReadTime:       post.ReadTime,
		Published:      post.Published,
		PublishDate:    post.PublishDate.UnixMilli(),
		AISummary:      post.AISummary,
		SEODescription: post.SEODescription,
	}
}

func (r *postRepository) toDomain(post dao.Post) domain.Post {
	return domain.Post{
		Id:             post.Id,
		Title:          post.Title,
		Excerpt:        post.Excerpt,
		Content:        post.Content,
		Category:       post.Category,
		Tags:           post.Tags.Val,
		Author:         post.Author,
		FeaturedImage:  post.FeaturedImage,
		ReadTime:       post.ReadTime,
		Published:      post.Published,
		PublishDate:    time.UnixMilli(post.PublishDate),
		Views:          post.Views,
		AISummary:      post.AISummary,
		SEODescription: post.SEODescription,
		Ctime:          time.UnixMilli(post.Ctime),
		Utime:          time.UnixMilli(post.Utime),
	}
}
