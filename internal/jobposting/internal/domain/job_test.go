package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobPosting_Normalize(t *testing.T) {
	testCases := []struct {
		name string
		job  JobPosting
		want JobPosting
	}{
		{
			name: "默认 Active",
			job:  JobPosting{Title: "Go 工程师", Skills: []string{"Go", " go", "Go ", "", "Kafka"}},
			want: JobPosting{Title: "Go 工程师", Status: StatusActive, Skills: []string{"Go", "go", "Kafka"}},
		},
		{
			name: "保留已有状态",
			job:  JobPosting{Status: StatusDraft},
			want: JobPosting{Status: StatusDraft, Skills: []string{}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.job.Normalize()
			assert.Equal(t, tc.want, tc.job)
		})
	}
}

func TestEnums(t *testing.T) {
	assert.True(t, EmploymentType("Full-time").Valid())
	assert.False(t, EmploymentType("full-time").Valid())
	assert.False(t, EmploymentType("").Valid())
	assert.True(t, Status("Closed").Valid())
	assert.False(t, Status("Archived").Valid())
}
