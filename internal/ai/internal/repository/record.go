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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -destination=./mocks/record.mock.go -package=repomocks LLMLogRepo
type LLMLogRepo interface {
	SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error)
	List(ctx context.Context, biz string, offset, limit int) ([]domain.LLMRecord, error)
	Count(ctx context.Context, biz string) (int64, error)
}

// 调用日志
type llmLogRepo struct {
	logDao dao.LLMRecordDAO
}

func NewLLMLogRepo(logDao dao.LLMRecordDAO) LLMLogRepo {
	return &llmLogRepo{
		logDao: logDao,
	}
}

func (g *llmLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return g.logDao.Save(ctx, g.toEntity(l))
}

func (g *llmLogRepo) List(ctx context.Context, biz string, offset, limit int) ([]domain.LLMRecord, error) {
	records, err := g.logDao.List(ctx, biz, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, func(idx int, src dao.LLMRecord) domain.LLMRecord {
		return g.toDomain(src)
	}), nil
}

func (g *llmLogRepo) Count(ctx context.Context, biz string) (int64, error) {
	return g.logDao.Count(ctx, biz)
}

func (g *llmLogRepo) toEntity(r domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Uid:    r.Uid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Amount: r.Amount,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Input,
		},
		Status:         r.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(r.PromptTemplate),
		Answer:         sqlx.NewNullString(r.Answer),
	}
}

func (g *llmLogRepo) toDomain(r dao.LLMRecord) domain.LLMRecord {
	return domain.LLMRecord{
		Id:             r.Id,
		Tid:            r.Tid,
		Uid:            r.Uid,
		Biz:            r.Biz,
		Tokens:         r.Tokens,
		Amount:         r.Amount,
		Input:          r.Input.Val,
		Status:         domain.RecordStatus(r.Status),
		PromptTemplate: r.PromptTemplate.String,
		Answer:         r.Answer.String,
		Ctime:          r.Ctime,
		Utime:          r.Utime,
	}
}
