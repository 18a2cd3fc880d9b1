package streaming_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/yomorun/lambda-stream/pkg/streaming"
	"github.com/yomorun/lambda-stream/pkg/streaming/mock"
)

func newConsumer(buf *bytes.Buffer) *streaming.Consumer {
	return streaming.NewConsumer(streaming.WithOutput(buf), streaming.WithLogger(discardLogger))
}

func TestHandle(t *testing.T) {
	logs := base64.StdEncoding.EncodeToString([]byte("log line"))

	tests := []struct {
		name  string
		event types.InvokeWithResponseStreamResponseEvent
		want  string
	}{
		{
			name:  "payload chunk",
			event: mock.PayloadChunk("hello"),
			want:  "Payload Chunk: hello\n",
		},
		{
			name:  "invalid utf-8 payload",
			event: mock.PayloadChunk("ok\xff"),
			want:  "Payload Chunk: ok�\n",
		},
		{
			name:  "completion with error skips logs",
			event: mock.InvokeComplete("Unhandled", "boom", logs),
			want:  "Error Code: Unhandled\nDetails: boom\n",
		},
		{
			name:  "completion with logs",
			event: mock.InvokeComplete("", "", logs),
			want:  "Logs: log line\n",
		},
		{
			name:  "completion without error and logs",
			event: mock.InvokeComplete("", "", ""),
			want:  "",
		},
		{
			name:  "completion with undecodable logs",
			event: mock.InvokeComplete("", "", "not base64!"),
			want:  "",
		},
		{
			name:  "unknown event",
			event: &types.UnknownUnionMember{Tag: "Heartbeat", Value: []byte("{}")},
			want:  "",
		},
		{
			name:  "nil event",
			event: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newConsumer(&buf).Handle(tt.event)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsume(t *testing.T) {
	var buf bytes.Buffer
	stream := mock.NewEventStream(nil,
		mock.PayloadChunk("Hello"),
		mock.PayloadChunk(", world"),
		mock.InvokeComplete("", "", base64.StdEncoding.EncodeToString([]byte("START RequestId"))),
	)

	err := newConsumer(&buf).Consume(context.Background(), stream)

	assert.NoError(t, err)
	assert.Equal(t, "Payload Chunk: Hello\nPayload Chunk: , world\nLogs: START RequestId\n", buf.String())
	assert.True(t, stream.Closed())
}

func TestConsumeMidstreamError(t *testing.T) {
	var buf bytes.Buffer
	streamErr := errors.New("stream reset")
	stream := mock.NewEventStream(streamErr, mock.PayloadChunk("partial"))

	err := newConsumer(&buf).Consume(context.Background(), stream)

	assert.ErrorIs(t, err, streamErr)
	assert.Equal(t, "Payload Chunk: partial\n", buf.String())
	assert.True(t, stream.Closed())
}

func TestConsumeContextDone(t *testing.T) {
	var buf bytes.Buffer
	stream := mock.NewOpenEventStream()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := newConsumer(&buf).Consume(ctx, stream)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, buf.String())
	assert.True(t, stream.Closed())
}
