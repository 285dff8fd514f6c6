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
	"database/sql"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Filter 所有条件之间是 AND
type Filter struct {
	Search string
	// 为空不过滤
	Status string
	// Scored 为 true 的时候只查有评分的，分数在 [MinScore, MaxScore) 之间，MaxScore 为 0 表示没有上限
	Scored   bool
	MinScore int
	MaxScore int
}

type ApplicationDAO interface {
	Insert(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	// List 按照创建时间倒序
	List(ctx context.Context, filter Filter, offset int, limit int) ([]Application, error)
	// ListBefore 按照 id 倒序取 id 小于 maxId 的数据，maxId 为 0 的时候从最新的开始
	ListBefore(ctx context.Context, filter Filter, maxId int64, limit int) ([]Application, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := g.db.WithContext(ctx).Create(&app).Error
	return app.Id, err
}

func (g *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) List(ctx context.Context, filter Filter, offset int, limit int) ([]Application, error) {
	var res []Application
	err := g.where(g.db.WithContext(ctx), filter).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) ListBefore(ctx context.Context, filter Filter, maxId int64, limit int) ([]Application, error) {
	db := g.where(g.db.WithContext(ctx), filter)
	if maxId > 0 {
		db = db.Where("id < ?", maxId)
	}
	var res []Application
	err := db.Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Count(ctx context.Context, filter Filter) (int64, error) {
	var cnt int64
	err := g.where(g.db.WithContext(ctx).Model(&Application{}), filter).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app Application
		err := tx.Select("id").Where("id = ?", id).First(&app).Error
		if err != nil {
			return err
		}
		return tx.Model(&Application{}).Where("id = ?", id).
			Updates(map[string]any{
				"status": status,
				"utime":  time.Now().UnixMilli(),
			}).Error
	})
}

func (g *GORMApplicationDAO) where(db *gorm.DB, filter Filter) *gorm.DB {
	if kw := strings.TrimSpace(filter.Search); kw != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(kw)) + "%"
		db = db.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(job_title) LIKE ?)",
			like, like, like)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Scored {
		db = db.Where("ai_score IS NOT NULL AND ai_score >= ?", filter.MinScore)
		if filter.MaxScore > 0 {
			db = db.Where("ai_score < ?", filter.MaxScore)
		}
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Application struct {
	Id              int64                          `gorm:"primaryKey,autoIncrement"`
	JobId           int64                          `gorm:"index;comment:弱引用，职位删除之后依旧保留"`
	JobTitle        string                         `gorm:"type:varchar(256);comment:申请时的职位标题"`
	FullName        string                         `gorm:"type:varchar(256);not null"`
	Email           string                         `gorm:"type:varchar(256);not null"`
	Phone           string                         `gorm:"type:varchar(64)"`
	LinkedinURL     string                         `gorm:"column:linkedin_url;type:varchar(512)"`
	PortfolioURL    string                         `gorm:"column:portfolio_url;type:varchar(512)"`
	ExperienceYears int                            `gorm:"not null;default:0"`
	Education       string                         `gorm:"type:varchar(512)"`
	CoverLetter     string                         `gorm:"type:text"`
	Skills          sqlx.JsonColumn[[]string]      `gorm:"type:json"`
	ResumeURL       string                         `gorm:"column:resume_url;type:varchar(1024)"`
	ExtractedData   sqlx.JsonColumn[ExtractedData] `gorm:"column:ai_extracted_data;type:json;comment:简历解析结果，失败的时候为 NULL"`
	// 评分和总结同时为 NULL 或者同时不为 NULL
	AIScore   sql.NullInt64  `gorm:"column:ai_score;index"`
	AISummary sql.NullString `gorm:"column:ai_summary;type:text"`
	Status    string         `gorm:"type:varchar(32);not null;default:'New';index"`
	Ctime     int64          `gorm:"index"`
	Utime     int64
}

func (Application) TableName() string {
	return "applications"
}

type ExtractedData struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Certifications []string `json:"certifications"`
}
