package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "New 到 Reviewing", from: StatusNew, to: StatusReviewing, want: true},
		{name: "New 直接到 Hired", from: StatusNew, to: StatusHired, want: false},
		{name: "面试之后录用", from: StatusInterviewScheduled, to: StatusHired, want: true},
		{name: "终态 Rejected", from: StatusRejected, to: StatusReviewing, want: false},
		{name: "终态 Hired", from: StatusHired, to: StatusNew, want: false},
		{name: "状态不变", from: StatusHired, to: StatusHired, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("interview scheduled").Valid())
	assert.False(t, Status("").Valid())
}

func TestSubmission_MissingField(t *testing.T) {
	full := Submission{JobId: 1, FullName: "Alice", Email: "a@b.com", Phone: "1"}
	assert.Equal(t, "", full.MissingField())
	s := full
	s.JobId = 0
	assert.Equal(t, "job_id", s.MissingField())
	s = full
	s.FullName = "  "
	assert.Equal(t, "full_name", s.MissingField())
	s = full
	s.ExperienceYears = -1
	assert.Equal(t, "experience_years", s.MissingField())
}

func TestResume_Supported(t *testing.T) {
	const max = 10
	assert.True(t, Resume{Name: "cv.PDF", Data: []byte("1")}.Supported(max))
	assert.True(t, Resume{Name: "cv.docx", Data: []byte("1")}.Supported(max))
	assert.True(t, Resume{Name: "cv.doc", Data: []byte("1")}.Supported(max))
	assert.False(t, Resume{Name: "cv.txt", Data: []byte("1")}.Supported(max))
	assert.False(t, Resume{Name: "cv.pdf", Data: make([]byte, 11)}.Supported(max))
}
