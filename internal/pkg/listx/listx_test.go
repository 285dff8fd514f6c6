package listx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name string
		s    string
		sep  string
		want []string
	}{
		{name: "逗号分隔", s: "Go, React ,SQL", sep: ",", want: []string{"Go", "React", "SQL"}},
		{name: "空元素", s: ",, Go,,", sep: ",", want: []string{"Go"}},
		{name: "空字符串", s: "", sep: ",", want: []string{}},
		{name: "保留重复", s: "Go,Go", sep: ",", want: []string{"Go", "Go"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.s, tc.sep))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"带团队", "写代码"}, Lines("带团队\r\n\r\n  写代码  \n"))
}

func TestSet(t *testing.T) {
	testCases := []struct {
		name string
		src  []string
		want []string
	}{
		{name: "去重保留第一次出现", src: []string{"Go", "SQL", " Go ", "React", "SQL"}, want: []string{"Go", "SQL", "React"}},
		{name: "去掉空白", src: []string{"", "  ", "Go"}, want: []string{"Go"}},
		{name: "nil", src: nil, want: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Set(tc.src))
		})
	}
}
