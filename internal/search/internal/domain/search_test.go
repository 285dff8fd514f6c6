package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Normalize(t *testing.T) {
	testCases := []struct {
		name      string
		q         Query
		want      Query
		wantValid bool
	}{
		{name: "默认", q: Query{Keyword: " go "}, want: Query{Keyword: "go", Limit: 10}, wantValid: true},
		{name: "all", q: Query{Keyword: "go", Biz: "ALL", Limit: 100}, want: Query{Keyword: "go", Limit: 50}, wantValid: true},
		{name: "职位", q: Query{Keyword: "go", Biz: " Job ", Offset: -3}, want: Query{Keyword: "go", Biz: BizJob, Limit: 10}, wantValid: true},
		{name: "空关键字", q: Query{Keyword: "  "}, want: Query{Limit: 10}},
		{name: "未知业务", q: Query{Keyword: "go", Biz: "case"}, want: Query{Keyword: "go", Biz: "case", Limit: 10}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.q.Normalize()
			assert.Equal(t, tc.want, q)
			assert.Equal(t, tc.wantValid, q.Valid())
		})
	}
}
