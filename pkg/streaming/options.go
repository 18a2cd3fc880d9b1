package streaming

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/yomorun/lambda-stream/core/ylog"
)

const (
	// DefaultPrefix is the name prefix the SAM template gives every demo function.
	DefaultPrefix = "lambda-streaming-sdk-sam-"
	// DefaultPageSize is the number of functions requested per ListFunctions page.
	DefaultPageSize = 50
)

// Options are the options shared by Runner, Resolver and URLInvoker.
type Options struct {
	Prefix     string
	PageSize   int32
	Output     io.Writer
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// Option sets a field of Options.
type Option func(o *Options)

// WithPrefix sets the function name prefix the scenario name is appended to.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithPageSize sets the ListFunctions page size.
func WithPageSize(size int) Option {
	return func(o *Options) {
		o.PageSize = int32(size)
	}
}

// WithOutput sets the writer the decoded stream is printed to.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithLogger sets logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithHTTPClient sets the http client of the URLInvoker.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = c
	}
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		Prefix:     DefaultPrefix,
		PageSize:   DefaultPageSize,
		Output:     os.Stdout,
		Logger:     ylog.Logger(),
		HTTPClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
