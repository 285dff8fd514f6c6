package robot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		limit    int
		expected string
	}{
		{
			name:     "纯ASCII",
			content:  "Hello, World!",
			limit:    5,
			expected: "Hello",
		},
		{
			name:     "包含中文字符",
			content:  "你好，世界",
			limit:    7,
			expected: "你好",
		},
		{
			name:     "刚好在完整中文字符后",
			content:  "Go语言编程",
			limit:    8,
			expected: "Go语言",
		},
		{
			name:     "包含Emoji",
			content:  "Go语言很酷👍",
			limit:    16,
			expected: "Go语言很酷",
		},
		{
			name:     "长度小于限制",
			content:  "short string",
			limit:    20,
			expected: "short string",
		},
		{
			name:     "长度等于限制",
			content:  "exact length",
			limit:    12,
			expected: "exact length",
		},
		{
			name:     "限制为0",
			content:  "any string",
			limit:    0,
			expected: "",
		},
		{
			name:     "空字符串",
			content:  "",
			limit:    10,
			expected: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncate(tc.content, tc.limit))
		})
	}
	assert.Panics(t, func() {
		_ = truncate("this will panic", -1)
	})
}

func TestWechatRobot_SendMarkdown(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr bool
	}{
		{
			name: "发送成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var msg WechatRobotMessage
				_ = json.NewDecoder(r.Body).Decode(&msg)
				if msg.MsgType != "markdown" || msg.Markdown.Content != "### hello" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
			},
		},
		{
			name: "HTTP错误",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "业务错误",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"errcode":93000,"errmsg":"invalid webhook url"}`))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			r := NewWechatRobot(server.URL, server.Client())
			err := r.SendMarkdown(context.Background(), "### hello")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
