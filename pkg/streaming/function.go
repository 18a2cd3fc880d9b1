package streaming

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/yomorun/lambda-stream/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Function is the name and ARN of a deployed function, as reported by ListFunctions.
type Function struct {
	Name string
	ARN  string
}

// Resolver finds deployed functions by name prefix.
type Resolver struct {
	client   lambda.ListFunctionsAPIClient
	prefix   string
	pageSize int32
	logger   *slog.Logger
}

// NewResolver returns a Resolver listing functions through client.
func NewResolver(client lambda.ListFunctionsAPIClient, opts ...Option) *Resolver {
	o := newOptions(opts...)
	return &Resolver{
		client:   client,
		prefix:   o.Prefix,
		pageSize: o.PageSize,
		logger:   o.Logger,
	}
}

func (r *Resolver) paginator() *lambda.ListFunctionsPaginator {
	return lambda.NewListFunctionsPaginator(r.client, &lambda.ListFunctionsInput{}, func(o *lambda.ListFunctionsPaginatorOptions) {
		o.Limit = r.pageSize
	})
}

// Resolve returns the ARN of the first function whose name starts with the
// prefix followed by name. Pages are scanned in the order the service returns
// them and no page is requested after the one holding the match.
//
// A page without functions ends the search as not found, even when later
// pages exist. Listing errors are logged and reported as not found.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool) {
	prefix := r.prefix + name

	ctx, span := trace.Tracer().Start(ctx, "resolve", oteltrace.WithAttributes(attribute.String("prefix", prefix)))
	defer span.End()

	p := r.paginator()
	for page := 1; p.HasMorePages(); page++ {
		out, err := p.NextPage(ctx)
		if err != nil {
			r.logger.Error("Error while listing functions", "prefix", prefix, "err", err)
			span.RecordError(err)
			return "", false
		}
		if len(out.Functions) == 0 {
			r.logger.Debug("empty function page, stop listing", "prefix", prefix, "page", page)
			return "", false
		}
		for _, fn := range out.Functions {
			if strings.HasPrefix(aws.ToString(fn.FunctionName), prefix) {
				arn := aws.ToString(fn.FunctionArn)
				r.logger.Debug("Found function ARN", "arn", arn, "page", page)
				span.SetAttributes(attribute.String("arn", arn))
				return arn, true
			}
		}
	}

	return "", false
}

// List returns every function whose name starts with the prefix, across all pages.
func (r *Resolver) List(ctx context.Context) ([]Function, error) {
	ctx, span := trace.Tracer().Start(ctx, "list")
	defer span.End()

	var result []Function

	p := r.paginator()
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			span.RecordError(err)
			return result, err
		}
		for _, fn := range out.Functions {
			name := aws.ToString(fn.FunctionName)
			if strings.HasPrefix(name, r.prefix) {
				result = append(result, Function{Name: name, ARN: aws.ToString(fn.FunctionArn)})
			}
		}
	}

	return result, nil
}
