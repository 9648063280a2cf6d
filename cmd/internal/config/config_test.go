package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	pages [][]types.Parameter
	calls int
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, _ *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	page := f.pages[f.calls]
	f.calls++

	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"GO_ENV", "DATABASE_URL", "PORT", "JWT_SECRET", "TOKEN_TTL", "ADMIN_LOGIN", "S3_BUCKET_NAME", "BODY_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "30M", cfg.BodyLimit)
	assert.Equal(t, "admin", cfg.AdminLogin)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("DATABASE_URL", " postgres://reurb@db/reurb ")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("S3_BUCKET_NAME", "reurb-imports")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "postgres://reurb@db/reurb", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestFromEnvRejectsBadTTL(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("TOKEN_TTL", "forever")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRequiresSecretInProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadParametersExportsEveryPage(t *testing.T) {
	t.Setenv("REURB_TEST_A", "")
	t.Setenv("REURB_TEST_B", "")

	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/reurb/test/REURB_TEST_A"), Value: aws.String("one")}},
		{{Name: aws.String("/reurb/test/REURB_TEST_B"), Value: aws.String("two")}},
	}}

	n, err := LoadParameters(context.Background(), client, "/reurb/test/")
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, "one", os.Getenv("REURB_TEST_A"))
	assert.Equal(t, "two", os.Getenv("REURB_TEST_B"))
}
