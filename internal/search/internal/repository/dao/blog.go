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

const BlogIndexName = "blog_index"

type Blog struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Published   bool     `json:"published"`
	PublishDate int64    `json:"publish_date"`
}

type BlogDAO interface {
	Search(ctx context.Context, keyword string, offset, limit int) ([]Blog, int64, error)
}

type blogElasticDAO struct {
	client *elastic.Client
	index  string
	cols   []Col
}

func NewBlogElasticDAO(client *elastic.Client) BlogDAO {
	return &blogElasticDAO{
		client: client,
		index:  BlogIndexName,
		cols: []Col{
			{Name: "title", Boost: 3},
			{Name: "tags", Boost: 2},
			{Name: "excerpt", Boost: 2},
			{Name: "content"},
		},
	}
}

func (b *blogElasticDAO) Search(ctx context.Context, keyword string, offset, limit int) ([]Blog, int64, error) {
	query := elastic.NewBoolQuery().
		Must(buildMultiMatch(keyword, b.cols)).
		Filter(elastic.NewTermQuery("published", true))
	resp, err := b.client.Search(b.index).
		Query(query).
		// 正文只用来匹配
		FetchSourceContext(elastic.NewFetchSourceContext(true).Exclude("content")).
		From(offset).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, 0, err
	}
	res := make([]Blog, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Blog
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, ele)
	}
	return res, resp.TotalHits(), nil
}
