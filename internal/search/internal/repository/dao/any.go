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
	"fmt"

	"github.com/olivere/elastic/v7"
)

// AnyDAO 不关心文档的结构，原样写入
type AnyDAO interface {
	Input(ctx context.Context, index string, docID string, data string) error
	Delete(ctx context.Context, index string, docID string) error
}

type anyESDAO struct {
	client *elastic.Client
}

func NewAnyESDAO(client *elastic.Client) AnyDAO {
	return &anyESDAO{
		client: client,
	}
}

func (a *anyESDAO) Input(ctx context.Context, index string, docID string, data string) error {
	_, err := a.client.Index().
		Index(index).
		Id(docID).
		BodyString(data).
		Do(ctx)
	return err
}

func (a *anyESDAO) Delete(ctx context.Context, index string, docID string) error {
	_, err := a.client.Delete().
		Index(index).
		Id(docID).
		Do(ctx)
	// 文档本来就不存在
	if elastic.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("删除文档 %s/%s 失败: %w", index, docID, err)
	}
	return nil
}

func IndexName(biz string) string {
	return fmt.Sprintf("%s_index", biz)
}
