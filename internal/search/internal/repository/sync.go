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
	"strconv"

	"github.com/ecodeclub/mastersolis/internal/search/internal/repository/dao"
)

// SyncRepository 按照业务把文档写到对应的索引
type SyncRepository interface {
	Input(ctx context.Context, biz string, bizID int64, data string) error
	Delete(ctx context.Context, biz string, bizID int64) error
}

type syncRepository struct {
	anyDAO dao.AnyDAO
}

func NewSyncRepository(anyDAO dao.AnyDAO) SyncRepository {
	return &syncRepository{anyDAO: anyDAO}
}

func (s *syncRepository) Input(ctx context.Context, biz string, bizID int64, data string) error {
	return s.anyDAO.Input(ctx, dao.IndexName(biz), strconv.FormatInt(bizID, 10), data)
}

func (s *syncRepository) Delete(ctx context.Context, biz string, bizID int64) error {
	return s.anyDAO.Delete(ctx, dao.IndexName(biz), strconv.FormatInt(bizID, 10))
}
