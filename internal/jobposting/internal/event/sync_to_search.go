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

package event

import (
	"encoding/json"

	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
)

const (
	SyncTopic = "search_sync_events"
	Biz       = "job"
)

type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	// Deleted 为 true 的时候搜索那边删除文档，Data 为空
	Deleted bool `json:"deleted"`
	// Data 是 Job 利用 json 格式序列化出来的。
	Data string `json:"data"`
}

type Job struct {
	Id                 int64    `json:"id"`
	Title              string   `json:"title"`
	Department         string   `json:"department"`
	Location           string   `json:"location"`
	EmploymentType     string   `json:"employment_type"`
	ExperienceRequired string   `json:"experience_required"`
	Description        string   `json:"description"`
	Requirements       []string `json:"requirements"`
	Skills             []string `json:"skills"`
	Status             string   `json:"status"`
	PostedDate         int64    `json:"posted_date"`
}

func NewSyncEvent(job domain.JobPosting) SyncEvent {
	val, _ := json.Marshal(Job{
		Id:                 job.Id,
		Title:              job.Title,
		Department:         job.Department,
		Location:           job.Location,
		EmploymentType:     job.EmploymentType.String(),
		ExperienceRequired: job.ExperienceRequired,
		Description:        job.Description,
		Requirements:       job.Requirements,
		Skills:             job.Skills,
		Status:             job.Status.String(),
		PostedDate:         job.PostedDate.UnixMilli(),
	})
	return SyncEvent{
		Biz:   Biz,
		BizID: job.Id,
		Data:  string(val),
	}
}

func NewDeleteEvent(id int64) SyncEvent {
	return SyncEvent{
		Biz:     Biz,
		BizID:   id,
		Deleted: true,
	}
}
