package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResume_FileName(t *testing.T) {
	testCases := []struct {
		name string
		r    Resume
		want string
	}{
		{name: "空白替换成下划线", r: Resume{FullName: " Jane   Mary Doe "}, want: "Jane_Mary_Doe_Resume.html"},
		{name: "去掉非法字符", r: Resume{FullName: `Jane "J" Doe/..`}, want: "Jane_J_Doe.._Resume.html"},
		{name: "没有姓名", r: Resume{FullName: "  "}, want: "Resume.html"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.FileName())
		})
	}
}

func TestResume_CurrentRole(t *testing.T) {
	assert.Equal(t, "N/A", Resume{}.CurrentRole())
	assert.Equal(t, "Go Engineer", Resume{Experience: []Experience{
		{Title: "Go Engineer"}, {Title: "Intern"},
	}}.CurrentRole())
}

func TestExperience_Period(t *testing.T) {
	assert.Equal(t, "2020-01 - Present", Experience{StartDate: "2020-01", EndDate: "2022-01", Current: true}.Period())
	assert.Equal(t, "2018-03 - 2019-12", Experience{StartDate: "2018-03", EndDate: "2019-12"}.Period())
}
