package streaming

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// ErrNoEventStream is returned when a successful invocation carries no event stream.
var ErrNoEventStream = errors.New("streaming: response carries no event stream")

// EventStream is a finite, non-restartable sequence of stream events.
// *lambda.InvokeWithResponseStreamEventStream implements it.
type EventStream interface {
	// Events is closed after the last event or on a mid-stream failure.
	Events() <-chan types.InvokeWithResponseStreamResponseEvent
	// Close releases the underlying connection.
	Close() error
	// Err reports the failure that closed Events, if any.
	Err() error
}

// InvokeAPIClient is the part of *lambda.Client the Invoker needs.
type InvokeAPIClient interface {
	InvokeWithResponseStream(context.Context, *lambda.InvokeWithResponseStreamInput, ...func(*lambda.Options)) (*lambda.InvokeWithResponseStreamOutput, error)
}

// Invoker invokes a function and returns its streamed response.
type Invoker interface {
	InvokeStream(ctx context.Context, arn string, payload []byte) (EventStream, error)
}

type lambdaInvoker struct {
	client InvokeAPIClient
	logger *slog.Logger
}

// NewInvoker returns an Invoker calling InvokeWithResponseStream with tail logs.
func NewInvoker(client InvokeAPIClient, opts ...Option) Invoker {
	o := newOptions(opts...)
	return &lambdaInvoker{client: client, logger: o.Logger}
}

func (i *lambdaInvoker) InvokeStream(ctx context.Context, arn string, payload []byte) (EventStream, error) {
	out, err := i.client.InvokeWithResponseStream(ctx, &lambda.InvokeWithResponseStreamInput{
		FunctionName:   aws.String(arn),
		InvocationType: types.ResponseStreamingInvocationTypeRequestResponse,
		LogType:        types.LogTypeTail,
		Payload:        payload,
	})
	if err != nil {
		return nil, err
	}

	i.logger.Debug("function invoked",
		"arn", arn,
		"status_code", out.StatusCode,
		"executed_version", aws.ToString(out.ExecutedVersion),
		"content_type", aws.ToString(out.ResponseStreamContentType),
	)

	stream := out.GetStream()
	if stream == nil {
		return nil, ErrNoEventStream
	}
	return stream, nil
}
