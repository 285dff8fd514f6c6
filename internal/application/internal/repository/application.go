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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository/dao"
)

var ErrApplicationNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	List(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Application, error)
	// ListBefore 游标分页，maxId 为 0 的时候从最新的开始
	ListBefore(ctx context.Context, filter domain.Filter, maxId int64, limit int) ([]domain.Application, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(app))
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindById(ctx, id)
	return r.toDomain(app), err
}

func (r *applicationRepository) List(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Application, error) {
	apps, err := r.dao.List(ctx, r.toDAOFilter(filter), offset, limit)
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), err
}

func (r *applicationRepository) ListBefore(ctx context.Context, filter domain.Filter, maxId int64, limit int) ([]domain.Application, error) {
	apps, err := r.dao.ListBefore(ctx, r.toDAOFilter(filter), maxId, limit)
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), err
}

func (r *applicationRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.dao.Count(ctx, r.toDAOFilter(filter))
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *applicationRepository) toDAOFilter(f domain.Filter) dao.Filter {
	f = f.Normalize()
	res := dao.Filter{Search: f.Search}
	if f.Status != domain.All {
		res.Status = f.Status
	}
	if min, max, ok := f.Score.Range(); ok {
		res.Scored = true
		res.MinScore = min
		res.MaxScore = max
	}
	return res
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	res := dao.Application{
		Id:              app.Id,
		JobId:           app.JobId,
		JobTitle:        app.JobTitle,
		FullName:        app.FullName,
		Email:           app.Email,
		Phone:           app.Phone,
		LinkedinURL:     app.LinkedinURL,
		PortfolioURL:    app.PortfolioURL,
		ExperienceYears: app.ExperienceYears,
		Education:       app.Education,
		CoverLetter:     app.CoverLetter,
		Skills:          sqlx.JsonColumn[[]string]{Valid: true, Val: app.Skills},
		ResumeURL:       app.ResumeURL,
		Status:          app.Status.String(),
	}
	if app.ExtractedData != nil {
		res.ExtractedData = sqlx.JsonColumn[dao.ExtractedData]{
			Valid: true,
			Val:   dao.ExtractedData(*app.ExtractedData),
		}
	}
	// 同一个值决定两列
	if app.Assessment != nil {
		res.AIScore = sql.NullInt64{Int64: int64(app.Assessment.Score), Valid: true}
		res.AISummary = sql.NullString{String: app.Assessment.Summary, Valid: true}
	}
	return res
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	res := domain.Application{
		Id:              app.Id,
		JobId:           app.JobId,
		JobTitle:        app.JobTitle,
		FullName:        app.FullName,
		Email:           app.Email,
		Phone:           app.Phone,
		LinkedinURL:     app.LinkedinURL,
		PortfolioURL:    app.PortfolioURL,
		ExperienceYears: app.ExperienceYears,
		Education:       app.Education,
		CoverLetter:     app.CoverLetter,
		Skills:          app.Skills.Val,
		ResumeURL:       app.ResumeURL,
		Status:          domain.Status(app.Status),
		Ctime:           time.UnixMilli(app.Ctime),
		Utime:           time.UnixMilli(app.Utime),
	}
	if app.ExtractedData.Valid {
		data := domain.ExtractedData(app.ExtractedData.Val)
		res.ExtractedData = &data
	}
	// 两列必须同时有值才认为有评分
	if app.AIScore.Valid && app.AISummary.Valid {
		res.Assessment = &domain.AIAssessment{
			Score:   int(app.AIScore.Int64),
			Summary: app.AISummary.String,
		}
	}
	return res
}
