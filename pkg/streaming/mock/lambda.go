// Package mock provides in-memory lambda fakes for testing.
package mock

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/yomorun/lambda-stream/pkg/streaming"
)

// ARNPrefix is the ARN prefix of every fake function.
const ARNPrefix = "arn:aws:lambda:us-east-1:123456789012:function:"

// Function returns a function configuration named name.
func Function(name string) types.FunctionConfiguration {
	return types.FunctionConfiguration{
		FunctionName: aws.String(name),
		FunctionArn:  aws.String(ARNPrefix + name),
	}
}

// Page returns a page of functions named names.
func Page(names ...string) []types.FunctionConfiguration {
	page := make([]types.FunctionConfiguration, 0, len(names))
	for _, name := range names {
		page = append(page, Function(name))
	}
	return page
}

// FunctionLister serves Pages through ListFunctions, the marker is the page index.
type FunctionLister struct {
	Pages [][]types.FunctionConfiguration
	// Err is returned by every call when set.
	Err error

	mu       sync.Mutex
	calls    int
	maxItems []int32
}

// ListFunctions implements lambda.ListFunctionsAPIClient.
func (l *FunctionLister) ListFunctions(_ context.Context, in *lambda.ListFunctionsInput, _ ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls++
	l.maxItems = append(l.maxItems, aws.ToInt32(in.MaxItems))
	if l.Err != nil {
		return nil, l.Err
	}

	idx := 0
	if in.Marker != nil {
		idx, _ = strconv.Atoi(*in.Marker)
	}
	if idx >= len(l.Pages) {
		return &lambda.ListFunctionsOutput{}, nil
	}

	out := &lambda.ListFunctionsOutput{Functions: l.Pages[idx]}
	if idx+1 < len(l.Pages) {
		out.NextMarker = aws.String(strconv.Itoa(idx + 1))
	}
	return out, nil
}

// Calls returns the number of pages requested.
func (l *FunctionLister) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.calls
}

// MaxItems returns the page size of every request.
func (l *FunctionLister) MaxItems() []int32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]int32(nil), l.maxItems...)
}

// PayloadChunk returns a payload chunk event carrying s.
func PayloadChunk(s string) types.InvokeWithResponseStreamResponseEvent {
	return &types.InvokeWithResponseStreamResponseEventMemberPayloadChunk{
		Value: types.InvokeResponseStreamUpdate{Payload: []byte(s)},
	}
}

// InvokeComplete returns a completion event, empty arguments are left unset.
func InvokeComplete(errorCode, errorDetails, logResult string) types.InvokeWithResponseStreamResponseEvent {
	e := types.InvokeWithResponseStreamCompleteEvent{}
	if errorCode != "" {
		e.ErrorCode = aws.String(errorCode)
	}
	if errorDetails != "" {
		e.ErrorDetails = aws.String(errorDetails)
	}
	if logResult != "" {
		e.LogResult = aws.String(logResult)
	}
	return &types.InvokeWithResponseStreamResponseEventMemberInvokeComplete{Value: e}
}

// EventStream replays a fixed list of events and then reports Error.
type EventStream struct {
	events chan types.InvokeWithResponseStreamResponseEvent
	err    error

	mu     sync.Mutex
	closed bool
}

// NewEventStream returns a stream yielding events, then failing with err if err is not nil.
func NewEventStream(err error, events ...types.InvokeWithResponseStreamResponseEvent) *EventStream {
	ch := make(chan types.InvokeWithResponseStreamResponseEvent, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return &EventStream{events: ch, err: err}
}

// NewOpenEventStream returns a stream that never yields and never ends.
func NewOpenEventStream() *EventStream {
	return &EventStream{events: make(chan types.InvokeWithResponseStreamResponseEvent)}
}

// Events implements streaming.EventStream.
func (s *EventStream) Events() <-chan types.InvokeWithResponseStreamResponseEvent { return s.events }

// Err implements streaming.EventStream.
func (s *EventStream) Err() error { return s.err }

// Close implements streaming.EventStream.
func (s *EventStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *EventStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Invoker returns Stream or Err for every invocation and records the ARNs.
type Invoker struct {
	Stream *EventStream
	Err    error

	mu       sync.Mutex
	arns     []string
	payloads [][]byte
}

var _ streaming.Invoker = (*Invoker)(nil)

// InvokeStream implements streaming.Invoker.
func (i *Invoker) InvokeStream(_ context.Context, arn string, payload []byte) (streaming.EventStream, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.arns = append(i.arns, arn)
	i.payloads = append(i.payloads, payload)
	if i.Err != nil {
		return nil, i.Err
	}
	if i.Stream == nil {
		return NewEventStream(nil), nil
	}
	return i.Stream, nil
}

// ARNs returns the invoked ARNs in order.
func (i *Invoker) ARNs() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	return append([]string(nil), i.arns...)
}

// Payloads returns the invocation payloads in order.
func (i *Invoker) Payloads() [][]byte {
	i.mu.Lock()
	defer i.mu.Unlock()

	return append([][]byte(nil), i.payloads...)
}

// InvokeAPI records InvokeWithResponseStream inputs and returns Output or Err.
type InvokeAPI struct {
	Output *lambda.InvokeWithResponseStreamOutput
	Err    error

	Inputs []*lambda.InvokeWithResponseStreamInput
}

var _ streaming.InvokeAPIClient = (*InvokeAPI)(nil)

// InvokeWithResponseStream implements streaming.InvokeAPIClient.
func (a *InvokeAPI) InvokeWithResponseStream(_ context.Context, in *lambda.InvokeWithResponseStreamInput, _ ...func(*lambda.Options)) (*lambda.InvokeWithResponseStreamOutput, error) {
	a.Inputs = append(a.Inputs, in)
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Output, nil
}
