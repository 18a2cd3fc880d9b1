package streaming_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yomorun/lambda-stream/pkg/streaming"
)

func isolateSharedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
}

func TestLoadAWSConfig(t *testing.T) {
	isolateSharedConfig(t)

	cfg, err := streaming.LoadAWSConfig(context.Background(), streaming.AWSOptions{
		Region:       "eu-central-1",
		AccessKey:    "AKIDEXAMPLE",
		SecretKey:    "secret",
		SessionToken: "token",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
	assert.Equal(t, "token", creds.SessionToken)

	assert.NotNil(t, streaming.NewClient(cfg))
}

func TestLoadAWSConfigUnknownProfile(t *testing.T) {
	isolateSharedConfig(t)

	_, err := streaming.LoadAWSConfig(context.Background(), streaming.AWSOptions{
		Region:  "us-east-1",
		Profile: "no-such-profile",
	})
	assert.Error(t, err)
}
