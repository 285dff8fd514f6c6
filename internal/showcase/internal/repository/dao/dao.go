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

package dao

import (
	"context"
	"strings"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Entity 四种展示内容共用同一套增删改查
type Entity interface {
	Project | ServiceItem | Testimonial | CaseStudy
	ID() int64
}

type Query struct {
	Featured bool
	Search   string
	Category string
	Tag      string
	// OrderBy 为空的时候使用默认排序
	OrderBy string
	Offset  int
	Limit   int
}

type DAO[T Entity] interface {
	Save(ctx context.Context, t T) (int64, error)
	FindById(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// table 描述每张表的差异
type table struct {
	// 更新的时候覆盖的列，不包含 ctime
	updates      []string
	searchCols   []string
	categoryCol  string
	// tagCol 是 JSON 数组列
	tagCol       string
	defaultOrder string
}

type GORMDAO[T Entity] struct {
	db  *egorm.Component
	tbl table
}

func newGORMDAO[T Entity](db *egorm.Component, tbl table) *GORMDAO[T] {
	return &GORMDAO[T]{db: db, tbl: tbl}
}

func (g *GORMDAO[T]) Save(ctx context.Context, t T) (int64, error) {
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(g.tbl.updates, "utime")),
	}).Create(&t).Error
	return t.ID(), err
}

func (g *GORMDAO[T]) FindById(ctx context.Context, id int64) (T, error) {
	var t T
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *GORMDAO[T]) List(ctx context.Context, q Query) ([]T, error) {
	order := q.OrderBy
	if order == "" {
		order = g.tbl.defaultOrder
	}
	var res []T
	err := g.where(ctx, q).
		Order(order).Order("id DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (g *GORMDAO[T]) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := g.where(ctx, q).Count(&res).Error
	return res, err
}

func (g *GORMDAO[T]) where(ctx context.Context, q Query) *gorm.DB {
	var t T
	db := g.db.WithContext(ctx).Model(&t)
	if q.Featured {
		db = db.Where("featured = ?", true)
	}
	if q.Category != "" && g.tbl.categoryCol != "" {
		db = db.Where(g.tbl.categoryCol+" = ?", q.Category)
	}
	if q.Tag != "" && g.tbl.tagCol != "" {
		db = db.Where("JSON_CONTAINS("+g.tbl.tagCol+", JSON_QUOTE(?))", q.Tag)
	}
	if q.Search != "" && len(g.tbl.searchCols) > 0 {
		pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		conds := make([]string, 0, len(g.tbl.searchCols))
		args := make([]any, 0, len(g.tbl.searchCols))
		for _, col := range g.tbl.searchCols {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}
	return db
}

func (g *GORMDAO[T]) Delete(ctx context.Context, id int64) error {
	var t T
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&t).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
