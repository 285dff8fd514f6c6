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
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const (
	JobIndexName = "job_index"
	// jobActive 只有招聘中的职位可以被搜到
	jobActive = "Active"
)

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

type JobDAO interface {
	Search(ctx context.Context, keyword string, offset, limit int) ([]Job, int64, error)
}

type jobElasticDAO struct {
	client *elastic.Client
	index  string
	cols   []Col
}

func NewJobElasticDAO(client *elastic.Client) JobDAO {
	return &jobElasticDAO{
		client: client,
		index:  JobIndexName,
		cols: []Col{
			{Name: "title", Boost: 3},
			{Name: "skills", Boost: 2},
			{Name: "description"},
			{Name: "requirements"},
			{Name: "department"},
		},
	}
}

func (j *jobElasticDAO) Search(ctx context.Context, keyword string, offset, limit int) ([]Job, int64, error) {
	query := elastic.NewBoolQuery().
		Must(buildMultiMatch(keyword, j.cols)).
		Filter(elastic.NewTermQuery("status", jobActive))
	resp, err := j.client.Search(j.index).
		Query(query).
		From(offset).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, 0, err
	}
	res := make([]Job, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Job
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, ele)
	}
	return res, resp.TotalHits(), nil
}
