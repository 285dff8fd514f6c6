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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/repository/dao"
)

var ErrNotFound = dao.ErrRecordNotFound

type Repository[T any] interface {
	Save(ctx context.Context, t T) (int64, error)
	FindById(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, q domain.Query) ([]T, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// crudRepository D 是领域对象，E 是对应的表
type crudRepository[D any, E dao.Entity] struct {
	dao      dao.DAO[E]
	toEntity func(D) E
	toDomain func(E) D
}

func (r *crudRepository[D, E]) Save(ctx context.Context, t D) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(t))
}

func (r *crudRepository[D, E]) FindById(ctx context.Context, id int64) (D, error) {
	e, err := r.dao.FindById(ctx, id)
	if err != nil {
		var d D
		if errors.Is(err, dao.ErrRecordNotFound) {
			return d, ErrNotFound
		}
		return d, err
	}
	return r.toDomain(e), nil
}

func (r *crudRepository[D, E]) List(ctx context.Context, q domain.Query) ([]D, error) {
	es, err := r.dao.List(ctx, r.query(q))
	return slice.Map(es, func(idx int, src E) D {
		return r.toDomain(src)
	}), err
}

func (r *crudRepository[D, E]) Count(ctx context.Context, q domain.Query) (int64, error) {
	return r.dao.Count(ctx, r.query(q))
}

func (r *crudRepository[D, E]) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *crudRepository[D, E]) query(q domain.Query) dao.Query {
	res := dao.Query{
		Featured: q.Featured,
		Search:   q.Search,
		Category: q.Category,
		Tag:      q.Tag,
		Offset:   q.Offset,
		Limit:    q.Limit,
	}
	if q.Order == domain.OrderNewest {
		res.OrderBy = "ctime DESC"
	}
	return res
}
