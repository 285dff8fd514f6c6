package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalAnswer(t *testing.T) {
	type score struct {
		Score   float64 `json:"score"`
		Summary string  `json:"summary"`
	}
	testCases := []struct {
		name    string
		answer  string
		want    score
		wantErr error
	}{
		{
			name:   "纯 JSON",
			answer: `{"score": 82, "summary": "Strong Go background."}`,
			want:   score{Score: 82, Summary: "Strong Go background."},
		},
		{
			name:   "markdown 代码块",
			answer: "```json\n{\"score\": 40.5, \"summary\": \"ok\"}\n```",
			want:   score{Score: 40.5, Summary: "ok"},
		},
		{
			name:   "带前后缀说明",
			answer: "Here is the result:\n{\"score\": 10, \"summary\": \"weak\"}\nThanks",
			want:   score{Score: 10, Summary: "weak"},
		},
		{
			name:    "没有 JSON",
			answer:  "I cannot evaluate this candidate.",
			wantErr: ErrMalformedAnswer,
		},
		{
			name:    "JSON 不完整",
			answer:  `{"score": 10, "summary": }`,
			wantErr: ErrMalformedAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got score
			err := UnmarshalAnswer(tc.answer, &got)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
