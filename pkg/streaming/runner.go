package streaming

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/yomorun/lambda-stream/pkg/id"
	"github.com/yomorun/lambda-stream/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// NotDeployedMessage is printed when no function matches a scenario.
const NotDeployedMessage = "Could not find the reference streaming function. Have you deployed it yet?"

// Outcome is the result of one scenario run.
type Outcome int

const (
	// OutcomeNotFound means no deployed function matched, nothing was invoked.
	OutcomeNotFound Outcome = iota
	// OutcomeCompleted means the stream was consumed to its end.
	OutcomeCompleted
	// OutcomeFailed means the invocation or the stream failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "NotFound"
	case OutcomeCompleted:
		return "Completed"
	case OutcomeFailed:
		return "Failed"
	}
	return "Unknown"
}

// Runner resolves a function by scenario name, invokes it and prints its stream.
type Runner struct {
	resolver *Resolver
	invoker  Invoker
	out      io.Writer
	logger   *slog.Logger
}

// NewRunner returns a Runner listing functions through lister and invoking them through invoker.
func NewRunner(lister lambda.ListFunctionsAPIClient, invoker Invoker, opts ...Option) *Runner {
	o := newOptions(opts...)
	return &Runner{
		resolver: NewResolver(lister, opts...),
		invoker:  invoker,
		out:      o.Output,
		logger:   o.Logger,
	}
}

// Run runs one scenario. Failures are logged and printed, never returned:
// the Outcome tells what happened.
func (r *Runner) Run(ctx context.Context, name string, payload []byte) Outcome {
	runID := id.New()
	logger := r.logger.With("scenario", name, "run_id", runID)

	ctx, span := trace.Tracer().Start(ctx, "scenario", oteltrace.WithAttributes(
		attribute.String("scenario", name),
		attribute.String("run_id", runID),
	))
	defer span.End()

	arn, ok := r.resolver.Resolve(ctx, name)
	if !ok {
		logger.Info("function not found")
		fmt.Fprintln(r.out, NotDeployedMessage)
		return OutcomeNotFound
	}
	fmt.Fprintf(r.out, "Found function ARN: %s\n", arn)

	if err := r.invoke(ctx, logger, arn, payload); err != nil {
		logger.Error("Error invoking Lambda function", "arn", arn, "err", err)
		fmt.Fprintf(r.out, "Error invoking Lambda function: %v\n", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return OutcomeFailed
	}

	logger.Debug("stream consumed", "arn", arn)
	return OutcomeCompleted
}

func (r *Runner) invoke(ctx context.Context, logger *slog.Logger, arn string, payload []byte) error {
	ctx, span := trace.Tracer().Start(ctx, "invoke", oteltrace.WithAttributes(attribute.String("arn", arn)))
	defer span.End()

	stream, err := r.invoker.InvokeStream(ctx, arn, payload)
	if err != nil {
		return err
	}

	consumer := &Consumer{out: r.out, logger: logger}
	return consumer.Consume(ctx, stream)
}
