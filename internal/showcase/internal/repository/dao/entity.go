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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type Project struct {
	Id             int64                     `gorm:"primaryKey,autoIncrement"`
	Title          string                    `gorm:"type:varchar(256);not null"`
	Client         string                    `gorm:"type:varchar(256)"`
	Category       string                    `gorm:"type:varchar(128);index"`
	Description    string                    `gorm:"type:text"`
	Technologies   sqlx.JsonColumn[[]string] `gorm:"type:json"`
	ImageURL       string                    `gorm:"type:varchar(1024)"`
	ProjectURL     string                    `gorm:"type:varchar(1024)"`
	CompletionDate int64                     `gorm:"index"`
	Featured       bool                      `gorm:"index"`
	Ctime          int64                     `gorm:"autoCreateTime:milli"`
	Utime          int64                     `gorm:"autoUpdateTime:milli"`
}

func (p Project) ID() int64 {
	return p.Id
}

func (Project) TableName() string {
	return "showcase_projects"
}

func NewProjectDAO(db *egorm.Component) DAO[Project] {
	return newGORMDAO[Project](db, table{
		updates: []string{"title", "client", "category", "description", "technologies",
			"image_url", "project_url", "completion_date", "featured"},
		searchCols:   []string{"title", "description", "client"},
		categoryCol:  "category",
		tagCol:       "technologies",
		defaultOrder: "completion_date DESC",
	})
}

type ServiceItem struct {
	Id           int64                     `gorm:"primaryKey,autoIncrement"`
	Title        string                    `gorm:"type:varchar(256);not null"`
	Description  string                    `gorm:"type:text"`
	Icon         string                    `gorm:"type:varchar(128)"`
	Features     sqlx.JsonColumn[[]string] `gorm:"type:json"`
	DisplayOrder int                       `gorm:"index"`
	Featured     bool                      `gorm:"index"`
	Ctime        int64                     `gorm:"autoCreateTime:milli"`
	Utime        int64                     `gorm:"autoUpdateTime:milli"`
}

func (s ServiceItem) ID() int64 {
	return s.Id
}

func (ServiceItem) TableName() string {
	return "showcase_services"
}

func NewServiceItemDAO(db *egorm.Component) DAO[ServiceItem] {
	return newGORMDAO[ServiceItem](db, table{
		updates:      []string{"title", "description", "icon", "features", "display_order", "featured"},
		searchCols:   []string{"title", "description"},
		defaultOrder: "display_order DESC",
	})
}

type Testimonial struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	ClientName    string `gorm:"type:varchar(256);not null"`
	ClientCompany string `gorm:"type:varchar(256)"`
	ClientRole    string `gorm:"type:varchar(256)"`
	Content       string `gorm:"type:text"`
	Rating        int
	AvatarURL     string `gorm:"type:varchar(1024)"`
	Featured      bool   `gorm:"index"`
	Ctime         int64  `gorm:"autoCreateTime:milli;index"`
	Utime         int64  `gorm:"autoUpdateTime:milli"`
}

func (t Testimonial) ID() int64 {
	return t.Id
}

func (Testimonial) TableName() string {
	return "showcase_testimonials"
}

func NewTestimonialDAO(db *egorm.Component) DAO[Testimonial] {
	return newGORMDAO[Testimonial](db, table{
		updates: []string{"client_name", "client_company", "client_role",
			"content", "rating", "avatar_url", "featured"},
		searchCols:   []string{"client_name", "client_company", "content"},
		defaultOrder: "ctime DESC",
	})
}

type CaseStudy struct {
	Id           int64                     `gorm:"primaryKey,autoIncrement"`
	Title        string                    `gorm:"type:varchar(256);not null"`
	Client       string                    `gorm:"type:varchar(256)"`
	Industry     string                    `gorm:"type:varchar(128);index"`
	Challenge    string                    `gorm:"type:text"`
	Solution     string                    `gorm:"type:text"`
	Results      string                    `gorm:"type:text"`
	Technologies sqlx.JsonColumn[[]string] `gorm:"type:json"`
	ImageURL     string                    `gorm:"type:varchar(1024)"`
	Featured     bool                      `gorm:"index"`
	Ctime        int64                     `gorm:"autoCreateTime:milli;index"`
	Utime        int64                     `gorm:"autoUpdateTime:milli"`
}

func (c CaseStudy) ID() int64 {
	return c.Id
}

func (CaseStudy) TableName() string {
	return "showcase_case_studies"
}

func NewCaseStudyDAO(db *egorm.Component) DAO[CaseStudy] {
	return newGORMDAO[CaseStudy](db, table{
		updates: []string{"title", "client", "industry", "challenge", "solution",
			"results", "technologies", "image_url", "featured"},
		searchCols:   []string{"title", "client", "industry"},
		categoryCol:  "industry",
		tagCol:       "technologies",
		defaultOrder: "ctime DESC",
	})
}
