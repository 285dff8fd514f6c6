package handler

import (
	"context"
	"testing"

	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceBuilder struct {
	name  string
	trace *[]string
}

func (b traceBuilder) Next(next Handler) Handler {
	return HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		*b.trace = append(*b.trace, b.name)
		return next.Handle(ctx, req)
	})
}

func TestNewCompositionHandler(t *testing.T) {
	var trace []string
	root := HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		trace = append(trace, "platform")
		return domain.LLMResponse{Answer: "ok"}, nil
	})
	h := NewCompositionHandler([]Builder{
		traceBuilder{name: "log", trace: &trace},
		traceBuilder{name: "config", trace: &trace},
		traceBuilder{name: "record", trace: &trace},
	}, root)
	resp, err := h.Handle(context.Background(), domain.LLMRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Answer)
	assert.Equal(t, []string{"log", "config", "record", "platform"}, trace)
}
