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
	"github.com/ecodeclub/mastersolis/internal/contact/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository/dao"
)

var ErrContactNotFound = errors.New("留言不存在")

//go:generate mockgen -source=./contact.go -package=repomocks -destination=mocks/contact.mock.go ContactRepository
type ContactRepository interface {
	Create(ctx context.Context, c domain.Contact) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Contact, error)
	List(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.Contact, error)
	Count(ctx context.Context, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	dao dao.ContactDAO
}

func NewContactRepository(d dao.ContactDAO) ContactRepository {
	return &contactRepository{dao: d}
}

func (r *contactRepository) Create(ctx context.Context, c domain.Contact) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *contactRepository) FindById(ctx context.Context, id int64) (domain.Contact, error) {
	c, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Contact{}, ErrContactNotFound
	}
	return r.toDomain(c), err
}

func (r *contactRepository) List(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.Contact, error) {
	res, err := r.dao.List(ctx, status.String(), offset, limit)
	return slice.Map(res, func(idx int, src dao.Contact) domain.Contact {
		return r.toDomain(src)
	}), err
}

func (r *contactRepository) Count(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.Count(ctx, status.String())
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.String())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrContactNotFound
	}
	return err
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *contactRepository) toEntity(c domain.Contact) dao.Contact {
	return dao.Contact{
		Id:              c.Id,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Company:         c.Company,
		Subject:         c.Subject,
		Message:         c.Message,
		ServiceInterest: c.ServiceInterest,
		BudgetRange:     c.BudgetRange,
		Status:          c.Status.String(),
	}
}

func (r *contactRepository) toDomain(c dao.Contact) domain.Contact {
	return domain.Contact{
		Id:              c.Id,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Company:         c.Company,
		Subject:         c.Subject,
		Message:         c.Message,
		ServiceInterest: c.ServiceInterest,
		BudgetRange:     c.BudgetRange,
		Status:          domain.Status(c.Status),
		Ctime:           time.UnixMilli(c.Ctime),
		Utime:           time.UnixMilli(c.Utime),
	}
}
