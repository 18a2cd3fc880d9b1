package streaming

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// AWSOptions selects the region and credentials, resolved once at startup.
type AWSOptions struct {
	Region string
	// Profile is an optional shared config profile.
	Profile string
	// AccessKey, SecretKey and SessionToken replace the default credential
	// chain when AccessKey is set.
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// LoadAWSConfig loads the shared AWS config with o applied on top.
func LoadAWSConfig(ctx context.Context, o AWSOptions) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if o.Region != "" {
		opts = append(opts, config.WithRegion(o.Region))
	}
	if o.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(o.Profile))
	}
	if o.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, o.SessionToken),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// Client is the lambda API used by Resolver and Invoker.
type Client interface {
	lambda.ListFunctionsAPIClient
	InvokeAPIClient
}

// NewClient returns the lambda client of cfg.
func NewClient(cfg aws.Config) Client {
	return lambda.NewFromConfig(cfg)
}
