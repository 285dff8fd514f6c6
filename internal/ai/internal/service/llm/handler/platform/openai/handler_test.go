package openai

import (
	"testing"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandler_buildParams(t *testing.T) {
	h := NewHandler("", "key")
	testCases := []struct {
		name       string
		cfg        domain.BizConfig
		input      []string
		wantMsgs   int
		wantJSON   bool
		wantTemp   bool
		wantMaxTok bool
	}{
		{
			name: "只有用户消息",
			cfg: domain.BizConfig{
				Model:          "deepseek-chat",
				PromptTemplate: "问题：%s",
			},
			input:    []string{"你好"},
			wantMsgs: 1,
		},
		{
			name: "系统提示词和 JSON 模式",
			cfg: domain.BizConfig{
				Model:          "deepseek-chat",
				SystemPrompt:   "你是招聘助手",
				PromptTemplate: "%s",
				Temperature:    0.3,
				MaxTokens:      512,
				JSONMode:       true,
			},
			input:      []string{"简历"},
			wantMsgs:   2,
			wantJSON:   true,
			wantTemp:   true,
			wantMaxTok: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := domain.LLMRequest{Input: tc.input, Config: tc.cfg}
			params := h.buildParams(&req)
			assert.Equal(t, tc.cfg.Model, params.Model)
			assert.Len(t, params.Messages, tc.wantMsgs)
			assert.Equal(t, tc.wantJSON, params.ResponseFormat.OfJSONObject != nil)
			assert.Equal(t, tc.wantTemp, params.Temperature.Valid())
			assert.Equal(t, tc.wantMaxTok, params.MaxTokens.Valid())
		})
	}
}
