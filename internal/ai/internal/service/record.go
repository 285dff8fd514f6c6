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

package service

import (
	"context"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository"
	"golang.org/x/sync/errgroup"
)

type RecordService interface {
	List(ctx context.Context, biz string, offset, limit int) ([]domain.LLMRecord, int64, error)
}

type recordService struct {
	repo repository.LLMLogRepo
}

func NewRecordService(repo repository.LLMLogRepo) RecordService {
	return &recordService{repo: repo}
}

func (s *recordService) List(ctx context.Context, biz string, offset, limit int) ([]domain.LLMRecord, int64, error) {
	var (
		eg      errgroup.Group
		records []domain.LLMRecord
		total   int64
	)
	eg.Go(func() error {
		var err error
		records, err = s.repo.List(ctx, biz, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, biz)
		return err
	})
	return records, total, eg.Wait()
}
