package streaming

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/yomorun/lambda-stream/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// signingService is the SigV4 service name of function URLs.
	signingService = "lambda"
	// emptyPayloadHash is the hex sha256 of an empty body.
	emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	// chunkSize is the read size of the streamed response body.
	chunkSize = 1024
)

// URLInvoker calls a function URL with a SigV4 signed GET and prints the
// streamed response body as it arrives.
type URLInvoker struct {
	client      *http.Client
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	region      string
	out         io.Writer
	logger      *slog.Logger
}

// NewURLInvoker returns a URLInvoker signing for region with credentials.
func NewURLInvoker(credentials aws.CredentialsProvider, region string, opts ...Option) *URLInvoker {
	o := newOptions(opts...)
	return &URLInvoker{
		client:      o.HTTPClient,
		signer:      v4.NewSigner(),
		credentials: credentials,
		region:      region,
		out:         o.Output,
		logger:      o.Logger,
	}
}

// Invoke streams the response of the function URL to the output.
// A non 200 response prints the status and body and returns an error.
func (u *URLInvoker) Invoke(ctx context.Context, url string) (err error) {
	ctx, span := trace.Tracer().Start(ctx, "url.invoke", oteltrace.WithAttributes(attribute.String("url", url)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if u.credentials == nil {
		return errors.New("streaming: no credentials to sign the function url request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	creds, err := u.credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("streaming: retrieve credentials: %w", err)
	}
	if err := u.signer.SignHTTP(ctx, creds, req, emptyPayloadHash, signingService, u.region, time.Now()); err != nil {
		return fmt.Errorf("streaming: sign request: %w", err)
	}

	fmt.Fprintf(u.out, "URL: %s\n", url)
	u.logger.Debug("signed function url request", "url", url, "headers", headerNames(req.Header))

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(u.out, "Failed to get response: %d\n", resp.StatusCode)
		fmt.Fprintln(u.out, string(body))
		return fmt.Errorf("streaming: function url responded %s", resp.Status)
	}

	fmt.Fprintln(u.out, "Streaming response:")
	buf := make([]byte, chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := u.out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

func headerNames(h http.Header) []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
