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

	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
)

const (
	SyncTopic = "search_sync_events"
	Biz       = "blog"
)

type SyncEvent struct {
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizID"`
	Deleted bool   `json:"deleted"`
	// Data 是 Blog 利用 json 格式序列化出来的。
	Data string `json:"data"`
}

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

func NewSyncEvent(post domain.Post) SyncEvent {
	val, _ := json.Marshal(Blog{
		Id:          post.Id,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Content:     post.Content,
		Category:    post.Category,
		Tags:        post.Tags,
		Author:      post.Author,
		Published:   post.Published,
		PublishDate: post.PublishDate.UnixMilli(),
	})
	return SyncEvent{
		Biz:   Biz,
		BizID: post.Id,
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
