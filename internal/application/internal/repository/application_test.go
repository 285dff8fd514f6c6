package repository

import (
	"database/sql"
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository/dao"
	"github.com/stretchr/testify/assert"
)

func TestApplicationRepository_toDAOFilter(t *testing.T) {
	repo := &applicationRepository{}
	testCases := []struct {
		name   string
		filter domain.Filter
		want   dao.Filter
	}{
		{name: "全部", filter: domain.Filter{Status: "all", Score: "all"}, want: dao.Filter{}},
		{name: "空", filter: domain.Filter{Search: "  go "}, want: dao.Filter{Search: "go"}},
		{name: "高分", filter: domain.Filter{Score: domain.ScoreHigh}, want: dao.Filter{Scored: true, MinScore: 70}},
		{name: "中等", filter: domain.Filter{Score: domain.ScoreMedium}, want: dao.Filter{Scored: true, MinScore: 40, MaxScore: 70}},
		{name: "低分", filter: domain.Filter{Score: domain.ScoreLow, Status: "New"}, want: dao.Filter{Status: "New", Scored: true, MinScore: 0, MaxScore: 40}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repo.toDAOFilter(tc.filter))
		})
	}
}

func TestApplicationRepository_Assessment(t *testing.T) {
	repo := &applicationRepository{}
	entity := repo.toEntity(domain.Application{Assessment: &domain.AIAssessment{Score: 80, Summary: "不错"}})
	assert.Equal(t, sql.NullInt64{Int64: 80, Valid: true}, entity.AIScore)
	assert.Equal(t, sql.NullString{String: "不错", Valid: true}, entity.AISummary)

	entity = repo.toEntity(domain.Application{})
	assert.False(t, entity.AIScore.Valid)
	assert.False(t, entity.AISummary.Valid)
	assert.False(t, entity.ExtractedData.Valid)

	// 只有一列有值的脏数据当作没有评分
	app := repo.toDomain(dao.Application{AIScore: sql.NullInt64{Int64: 80, Valid: true}})
	assert.Nil(t, app.Assessment)

	app = repo.toDomain(dao.Application{
		ExtractedData: sqlx.JsonColumn[dao.ExtractedData]{Valid: true, Val: dao.ExtractedData{Name: "Alice"}},
	})
	assert.Equal(t, &domain.ExtractedData{Name: "Alice"}, app.ExtractedData)
}
