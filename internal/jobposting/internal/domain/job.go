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

package domain

import (
	"time"

	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
)

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "Full-time"
	EmploymentTypePartTime   EmploymentType = "Part-time"
	EmploymentTypeContract   EmploymentType = "Contract"
	EmploymentTypeInternship EmploymentType = "Internship"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime,
		EmploymentTypeContract, EmploymentTypeInternship:
		return true
	}
	return false
}

func (t EmploymentType) String() string {
	return string(t)
}

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
	StatusDraft  Status = "Draft"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusClosed || s == StatusDraft
}

func (s Status) String() string {
	return string(s)
}

type JobPosting struct {
	Id                 int64
	Title              string
	Department         string
	Location           string
	EmploymentType     EmploymentType
	ExperienceRequired string
	Description        string
	// 有序
	Responsibilities []string
	Requirements     []string
	// 集合语义，见 NormalizeSkills
	Skills      []string
	SalaryRange string
	Status      Status
	PostedDate  time.Time
	Ctime       time.Time
	Utime       time.Time
}

func (j JobPosting) Active() bool {
	return j.Status == StatusActive
}

// Normalize 填充默认值，整理技能列表。
// 状态为空的时候默认是 Active
func (j *JobPosting) Normalize() {
	if j.Status == "" {
		j.Status = StatusActive
	}
	j.Skills = NormalizeSkills(j.Skills)
}

// NormalizeSkills 去掉空白，去重，保留第一次出现的顺序
func NormalizeSkills(skills []string) []string {
	return listx.Set(skills)
}
