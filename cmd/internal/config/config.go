package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultSSMPrefix = "/reurb/prod/"
	defaultAWSRegion = "us-east-1"
	defaultPort      = "5000"
	defaultTokenTTL  = 12 * time.Hour
	defaultBodyLimit = "30M"
	defaultAdmin     = "admin"

	// Only ever used outside production.
	devJWTSecret = "reurb-dev-secret"
)

type Config struct {
	Production    bool
	DatabaseURL   string
	Port          string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminLogin    string
	AdminPassword string
	S3Bucket      string
	S3Region      string
	BodyLimit     string
}

// Load fills the environment (from SSM Parameter Store in production, from
// .env otherwise) and reads the configuration out of it.
func Load(ctx context.Context) (*Config, error) {
	if isProduction() {
		prefix := getEnv("SSM_PARAMETER_PREFIX", defaultSSMPrefix)
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnv("AWS_REGION", defaultAWSRegion)))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}

		n, err := LoadParameters(ctx, ssm.NewFromConfig(awsCfg), prefix)
		if err != nil {
			return nil, fmt.Errorf("unable to load prod environment: %w", err)
		}
		log.Debugf("loaded %d prod environment variables", n)
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	return FromEnv()
}

// LoadParameters exports every parameter under prefix as an environment
// variable named after the rest of its path. It returns how many were set.
func LoadParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return count, err
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}
	return count, nil
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Production:    isProduction(),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:          getEnv("PORT", defaultPort),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      defaultTokenTTL,
		AdminLogin:    getEnv("ADMIN_LOGIN", defaultAdmin),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		S3Region:      getEnv("AWS_S3_REGION", getEnv("AWS_REGION", defaultAWSRegion)),
		BodyLimit:     getEnv("BODY_LIMIT", defaultBodyLimit),
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}

		if ttl <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: must be positive", raw)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.JWTSecret == "" {
		if cfg.Production {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		log.Warn("JWT_SECRET is not set, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

// ArchiveEnabled reports whether imported files are copied to S3.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

func isProduction() bool {
	return os.Getenv("GO_ENV") == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
