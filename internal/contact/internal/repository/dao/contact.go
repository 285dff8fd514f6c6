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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ContactDAO interface {
	Insert(ctx context.Context, c Contact) (int64, error)
	FindById(ctx context.Context, id int64) (Contact, error)
	// List status 为空的时候不过滤
	List(ctx context.Context, status string, offset int, limit int) ([]Contact, error)
	Count(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type GORMContactDAO struct {
	db *egorm.Component
}

func NewGORMContactDAO(db *egorm.Component) ContactDAO {
	return &GORMContactDAO{db: db}
}

func (g *GORMContactDAO) Insert(ctx context.Context, c Contact) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMContactDAO) FindById(ctx context.Context, id int64) (Contact, error) {
	var c Contact
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMContactDAO) List(ctx context.Context, status string, offset int, limit int) ([]Contact, error) {
	var res []Contact
	err := g.byStatus(ctx, status).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMContactDAO) Count(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := g.byStatus(ctx, status).Count(&cnt).Error
	return cnt, err
}

func (g *GORMContactDAO) byStatus(ctx context.Context, status string) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Contact{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (g *GORMContactDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Contact
		err := tx.Select("id").Where("id = ?", id).First(&c).Error
		if err != nil {
			return err
		}
		return tx.Model(&Contact{}).Where("id = ?", id).Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
	})
}

func (g *GORMContactDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Contact{}).Error
}

type Contact struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	Name            string `gorm:"type:varchar(256);not null"`
	Email           string `gorm:"type:varchar(256);not null"`
	Phone           string `gorm:"type:varchar(64)"`
	Company         string `gorm:"type:varchar(256)"`
	Subject         string `gorm:"type:varchar(512);not null"`
	Message         string `gorm:"type:text"`
	ServiceInterest string `gorm:"type:varchar(128)"`
	BudgetRange     string `gorm:"type:varchar(64)"`
	Status          string `gorm:"type:varchar(32);not null;default:'New';index"`
	Ctime           int64  `gorm:"index"`
	Utime           int64
}

func (Contact) TableName() string {
	return "contact_submissions"
}
