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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository/dao"
)

var ErrJobNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./job.go -package=repomocks -destination=mocks/job.mock.go JobRepository
type JobRepository interface {
	Save(ctx context.Context, job domain.JobPosting) (int64, error)
	FindById(ctx context.Context, id int64) (domain.JobPosting, error)
	List(ctx context.Context, offset int, limit int) ([]domain.JobPosting, error)
	ListByStatus(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.JobPosting, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Save(ctx context.Context, job domain.JobPosting) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(job))
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.JobPosting, error) {
	job, err := r.dao.FindById(ctx, id)
	return r.toDomain(job), err
}

func (r *jobRepository) List(ctx context.Context, offset int, limit int) ([]domain.JobPosting, error) {
	jobs, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(jobs), err
}

func (r *jobRepository) ListByStatus(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.JobPosting, error) {
	jobs, err := r.dao.ListByStatus(ctx, status.String(), offset, limit)
	return r.toDomains(jobs), err
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *jobRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.CountByStatus(ctx, status.String())
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *jobRepository) toDomains(jobs []dao.JobPosting) []domain.JobPosting {
	return slice.Map(jobs, func(idx int, src dao.JobPosting) domain.JobPosting {
		return r.toDomain(src)
	})
}

func (r *jobRepository) toEntity(job domain.JobPosting) dao.JobPosting {
	return dao.JobPosting{
		Id:                 job.Id,
		Title:              job.Title,
		Department:         job.Department,
		Location:           job.Location,
		EmploymentType:     job.EmploymentType.String(),
		ExperienceRequired: job.ExperienceRequired,
		Description:        job.Description,
		Responsibilities:   sqlx.JsonColumn[[]string]{Valid: true, Val: job.Responsibilities},
		Requirements:       sqlx.JsonColumn[[]string]{Valid: true, Val: job.Requirements},
		Skills:             sqlx.JsonColumn[[]string]{Valid: true, Val: job.Skills},
		SalaryRange:        job.SalaryRange,
		Status:             job.Status.String(),
		PostedDate:         job.PostedDate.UnixMilli(),
	}
}

func (r *jobRepository) toDomain(job dao.JobPosting) domain.JobPosting {
	return domain.JobPosting{
		Id:                 job.Id,
		Title:              job.Title,
		Department:         job.Department,
		Location:           job.Location,
		EmploymentType:     domain.EmploymentType(job.EmploymentType),
		ExperienceRequired: job.ExperienceRequired,
		Description:        job.Description,
		Responsibilities:   job.Responsibilities.Val,
		Requirements:       job.Requirements.Val,
		Skills:             job.Skills.Val,
		SalaryRange:        job.SalaryRange,
		Status:             domain.Status(job.Status),
		PostedDate:         time.UnixMilli(job.PostedDate),
		Ctime:              time.UnixMilli(job.Ctime),
		Utime:              time.UnixMilli(job.Utime),
	}
}
