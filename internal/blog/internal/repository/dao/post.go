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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Filter struct {
	Search   string
	Category string
}

type PostDAO interface {
	Save(ctx context.Context, post Post) (int64, error)
	FindById(ctx context.Context, id int64) (Post, error)
	List(ctx context.Context, offset int, limit int) ([]Post, error)
	Count(ctx context.Context) (int64, error)
	ListPublished(ctx context.Context, filter Filter, offset int, limit int) ([]Post, error)
	CountPublished(ctx context.Context, filter Filter) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	// IncrViews 只增加已经发布的文章，返回是否更新了
	IncrViews(ctx context.Context, id int64) (bool, error)
	// SetSummaryIfEmpty 只有摘要还是空的时候才写入，返回是否写入了
	SetSummaryIfEmpty(ctx context.Context, id int64, summary string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type GORMPostDAO struct {
	db *egorm.Component
}

func NewGORMPostDAO(db *egorm.Component) PostDAO {
	return &GORMPostDAO{db: db}
}

func (g *GORMPostDAO) Save(ctx context.Context, post Post) (int64, error) {
	now := time.Now().UnixMilli()
	post.Ctime = now
	post.Utime = now
	// 浏览量只通过 IncrViews 修改
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "excerpt", "content", "category", "tags", "author",
			"featured_image", "read_time", "published", "publish_date",
			"ai_summary", "seo_description", "utime",
		}),
	}).Create(&post).Error
	return post.Id, err
}

func (g *GORMPostDAO) FindById(ctx context.Context, id int64) (Post, error) {
	var post Post
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	return post, err
}

func (g *GORMPostDAO) List(ctx context.Context, offset int, limit int) ([]Post, error) {
	var res []Post
	err := g.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPostDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Post{}).Count(&cnt).Error
	return cnt, err
}

func (g *GORMPostDAO) ListPublished(ctx context.Context, filter Filter, offset int, limit int) ([]Post, error) {
	var res []Post
	// 列表页不需要正文
	err := g.published(ctx, filter).
		Omit("content").
		Order("publish_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPostDAO) CountPublished(ctx context.Context, filter Filter) (int64, error) {
	var cnt int64
	err := g.published(ctx, filter).Count(&cnt).Error
	return cnt, err
}

func (g *GORMPostDAO) published(ctx context.Context, filter Filter) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Post{}).Where("published = ?", true)
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		kw := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", kw, kw)
	}
	return db
}

func (g *GORMPostDAO) Categories(ctx context.Context) ([]string, error) {
	var res []string
	err := g.db.WithContext(ctx).Model(&Post{}).
		Where("published = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &res).Error
	return res, err
}

func (g *GORMPostDAO) IncrViews(ctx context.Context, id int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Post{}).
		Where("id = ? AND published = ?", id, true).
		Update("views", gorm.Expr("views + 1"))
	return res.RowsAffected > 0, res.Error
}

func (g *GORMPostDAO) SetSummaryIfEmpty(ctx context.Context, id int64, summary string) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Post{}).
		Where("id = ? AND (ai_summary IS NULL OR ai_summary = '')", id).
		Updates(map[string]any{
			"ai_summary": summary,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMPostDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Post{}).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type Post struct {
	Id             int64                     `gorm:"primaryKey,autoIncrement"`
	Title          string                    `gorm:"type:varchar(512);not null"`
	Excerpt        string                    `gorm:"type:varchar(1024)"`
	Content        string                    `gorm:"type:mediumtext"`
	Category       string                    `gorm:"type:varchar(128);index"`
	Tags           sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Author         string                    `gorm:"type:varchar(128)"`
	FeaturedImage  string                    `gorm:"type:varchar(1024)"`
	ReadTime       int                       `gorm:"not null;default:1;comment:阅读时间，分钟"`
	Published      bool                      `gorm:"not null;default:false;index:idx_published_publish_date"`
	PublishDate    int64                     `gorm:"index:idx_published_publish_date"`
	Views          int64                     `gorm:"not null;default:0"`
	AISummary      string                    `gorm:"column:ai_summary;type:text"`
	SEODescription string                    `gorm:"column:seo_description;type:varchar(512)"`
	Ctime          int64
	Utime          int64
}

func (Post) TableName() string {
	return "blog_posts"
}
