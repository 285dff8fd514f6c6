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

	"github.com/ecodeclub/mastersolis/internal/search/internal/repository"
)

type SyncService interface {
	Input(ctx context.Context, biz string, bizID int64, data string) error
	Delete(ctx context.Context, biz string, bizID int64) error
}

type syncService struct {
	repo repository.SyncRepository
}

func NewSyncService(repo repository.SyncRepository) SyncService {
	return &syncService{repo: repo}
}

func (s *syncService) Input(ctx context.Context, biz string, bizID int64, data string) error {
	return s.repo.Input(ctx, biz, bizID, data)
}

func (s *syncService) Delete(ctx context.Context, biz string, bizID int64) error {
	return s.repo.Delete(ctx, biz, bizID)
}
