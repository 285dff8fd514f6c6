package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testEvent struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

func TestTraceMQ_ProduceConsume(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	base := memory.NewMQ()
	require.NoError(t, base.CreateTopic(ctx, "test_events", 1))
	q := NewTraceMQ(base)

	got := make(chan testEvent, 1)
	consumer, err := NewJSONConsumer[testEvent](q, "test_events", "test", func(ctx context.Context, evt testEvent) error {
		got <- evt
		return nil
	})
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, "test_events")
	require.NoError(t, err)

	want := testEvent{Id: 1, Name: "Go Engineer"}
	require.NoError(t, producer.Produce(ctx, want))
	require.NoError(t, consumer.Consume(ctx))
	assert.Equal(t, want, <-got)

	names := make([]string, 0, 2)
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"mq.produce test_events", "mq.consume test_events"}, names)
}
