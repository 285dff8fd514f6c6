package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestimonial_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		t       Testimonial
		wantErr error
	}{
		{name: "合法", t: Testimonial{ClientName: "Ann", Content: "great", Rating: 5}},
		{name: "缺少客户", t: Testimonial{Content: "great", Rating: 5}, wantErr: ErrInvalidInput},
		{name: "缺少内容", t: Testimonial{ClientName: "Ann", Rating: 3}, wantErr: ErrInvalidInput},
		{name: "评分太低", t: Testimonial{ClientName: "Ann", Content: "ok", Rating: 0}, wantErr: ErrInvalidInput},
		{name: "评分太高", t: Testimonial{ClientName: "Ann", Content: "ok", Rating: 6}, wantErr: ErrInvalidInput},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.t.Validate(), tc.wantErr)
		})
	}
}

func TestQuery_Normalize(t *testing.T) {
	testCases := []struct {
		name string
		q    Query
		want Query
	}{
		{name: "默认分页", q: Query{}, want: Query{Limit: 20}},
		{name: "限制最大", q: Query{Offset: -1, Limit: 1000}, want: Query{Limit: 100}},
		{name: "all 分类", q: Query{Category: " All ", Search: " go ", Limit: 3}, want: Query{Search: "go", Limit: 3}},
		{name: "技术栈", q: Query{Tag: " Flutter ", Limit: 3}, want: Query{Tag: "Flutter", Limit: 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.Normalize())
		})
	}
}

func TestProject_Validate(t *testing.T) {
	assert.ErrorIs(t, Project{Title: "  "}.Validate(), ErrInvalidInput)
	assert.NoError(t, Project{Title: "CRM"}.Validate())
	assert.ErrorIs(t, CaseStudy{}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ServiceItem{}.Validate(), ErrInvalidInput)
}
