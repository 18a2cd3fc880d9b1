package streaming

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// Consumer prints the events of a response stream.
type Consumer struct {
	out    io.Writer
	logger *slog.Logger
}

// NewConsumer returns a Consumer printing to the configured output.
func NewConsumer(opts ...Option) *Consumer {
	o := newOptions(opts...)
	return &Consumer{out: o.Output, logger: o.Logger}
}

// Consume prints every event of stream until it is exhausted, then closes it.
// It returns the mid-stream failure reported by the stream, or the context
// error if ctx ends first.
func (c *Consumer) Consume(ctx context.Context, stream EventStream) error {
	defer func() {
		if err := stream.Close(); err != nil {
			c.logger.Debug("close event stream", "err", err)
		}
	}()

	events := stream.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return stream.Err()
			}
			c.Handle(event)
		}
	}
}

// Handle prints one event. Payload chunks are printed as utf-8 text,
// completion events print their error or their decoded tail log.
func (c *Consumer) Handle(event types.InvokeWithResponseStreamResponseEvent) {
	c.logger.Debug("Received event", "event", fmt.Sprintf("%+v", event))

	switch v := event.(type) {
	case *types.InvokeWithResponseStreamResponseEventMemberPayloadChunk:
		fmt.Fprintf(c.out, "Payload Chunk: %s\n", decodeUTF8(v.Value.Payload))

	case *types.InvokeWithResponseStreamResponseEventMemberInvokeComplete:
		c.complete(v.Value)

	case *types.UnknownUnionMember:
		c.logger.Info("ignore unknown event", "tag", v.Tag, "value", string(v.Value))

	default:
		c.logger.Info("ignore unexpected event", "type", fmt.Sprintf("%T", event))
	}
}

func (c *Consumer) complete(e types.InvokeWithResponseStreamCompleteEvent) {
	if code := aws.ToString(e.ErrorCode); code != "" {
		fmt.Fprintf(c.out, "Error Code: %s\n", code)
		fmt.Fprintf(c.out, "Details: %s\n", aws.ToString(e.ErrorDetails))
		return
	}

	if e.LogResult == nil || *e.LogResult == "" {
		return
	}
	logs, err := base64.StdEncoding.DecodeString(*e.LogResult)
	if err != nil {
		c.logger.Warn("decode log result", "err", err)
		return
	}
	fmt.Fprintf(c.out, "Logs: %s\n", decodeUTF8(logs))
}

// decodeUTF8 replaces invalid utf-8 sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
