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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Save(ctx context.Context, job JobPosting) (int64, error)
	FindById(ctx context.Context, id int64) (JobPosting, error)
	List(ctx context.Context, offset int, limit int) ([]JobPosting, error)
	ListByStatus(ctx context.Context, status string, offset int, limit int) ([]JobPosting, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Save(ctx context.Context, job JobPosting) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime = now
	job.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "department", "location", "employment_type",
			"experience_required", "description", "responsibilities",
			"requirements", "skills", "salary_range", "status",
			"posted_date", "utime",
		}),
	}).Create(&job).Error
	return job.Id, err
}

func (g *GORMJobDAO) FindById(ctx context.Context, id int64) (JobPosting, error) {
	var job JobPosting
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (g *GORMJobDAO) List(ctx context.Context, offset int, limit int) ([]JobPosting, error) {
	var res []JobPosting
	err := g.db.WithContext(ctx).
		Order("posted_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) ListByStatus(ctx context.Context, status string, offset int, limit int) ([]JobPosting, error) {
	var res []JobPosting
	err := g.db.WithContext(ctx).
		Where("status = ?", status).
		Order("posted_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&JobPosting{}).Count(&cnt).Error
	return cnt, err
}

func (g *GORMJobDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&JobPosting{}).
		Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (g *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return g.db.WithContext(ctx).Model(&JobPosting{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMJobDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&JobPosting{}).Error
}

type JobPosting struct {
	Id                 int64                     `gorm:"primaryKey,autoIncrement"`
	Title              string                    `gorm:"type:varchar(256);not null"`
	Department         string                    `gorm:"type:varchar(128)"`
	Location           string                    `gorm:"type:varchar(256)"`
	EmploymentType     string                    `gorm:"type:varchar(32);not null"`
	ExperienceRequired string                    `gorm:"type:varchar(128)"`
	Description        string                    `gorm:"type:text"`
	Responsibilities   sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Requirements       sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Skills             sqlx.JsonColumn[[]string] `gorm:"type:json"`
	SalaryRange        string                    `gorm:"type:varchar(128)"`
	Status             string                    `gorm:"type:varchar(16);not null;default:'Active';index:idx_status_posted_date"`
	PostedDate         int64                     `gorm:"index:idx_status_posted_date"`
	Ctime              int64
	Utime              int64
}

func (JobPosting) TableName() string {
	return "job_postings"
}
