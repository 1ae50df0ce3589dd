package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	AWS       AWSConfig
	Generator GeneratorConfig
	Auth      AuthConfig
}

type AppConfig struct {
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	Level  string
	Format string
}

type AWSConfig struct {
	Region           string
	AccessKey        string
	SecretKey        string
	DynamoDBTable    string
	DynamoDBEndpoint string
}

type GeneratorConfig struct {
	Backend   string
	APIKey    string
	Model     string
	AgentName string
	Timeout   time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

const (
	BackendGenAI = "genai"
	BackendAgent = "agent"

	defaultHTTPPort  = "8080"
	defaultModel     = "gemini-2.5-pro"
	defaultAgentName = "career counselor"
	defaultTimeout   = 60 * time.Second
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// UserInfoTable is the per-environment profile table name.
func UserInfoTable(env string) string {
	return env + "_user_info"
}

func Load() (Config, error) {
	cfg := Config{}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		Environment: req("APP_ENV"),
		HTTPPort:    opt("HTTP_PORT", defaultHTTPPort),
	}

	cfg.Log = LogConfig{
		Level:  strings.ToLower(opt("LOG_LEVEL", "info")),
		Format: strings.ToLower(opt("LOG_FORMAT", "console")),
	}

	cfg.AWS = AWSConfig{
		Region:           req("AWS_REGION"),
		AccessKey:        opt("AWS_ACCESS_KEY", ""),
		SecretKey:        opt("AWS_SECRET_KEY", ""),
		DynamoDBTable:    opt("DYNAMODB_TABLE", ""),
		DynamoDBEndpoint: opt("DYNAMODB_ENDPOINT", ""),
	}
	if cfg.AWS.DynamoDBTable == "" && cfg.App.Environment != "" {
		cfg.AWS.DynamoDBTable = UserInfoTable(cfg.App.Environment)
	}
	if (cfg.AWS.AccessKey == "") != (cfg.AWS.SecretKey == "") {
		invalid = append(invalid, "AWS_ACCESS_KEY and AWS_SECRET_KEY must be set together")
	}

	cfg.Generator = GeneratorConfig{
		Backend:   strings.ToLower(opt("GENERATOR_BACKEND", BackendGenAI)),
		APIKey:    req("GOOGLE_API_KEY"),
		Model:     opt("GEMINI_MODEL", defaultModel),
		AgentName: opt("AGENT_NAME", defaultAgentName),
		Timeout:   defaultTimeout,
	}
	if cfg.Generator.Backend != BackendGenAI && cfg.Generator.Backend != BackendAgent {
		invalid = append(invalid, fmt.Sprintf("GENERATOR_BACKEND %q (want %s or %s)", cfg.Generator.Backend, BackendGenAI, BackendAgent))
	}
	if raw := opt("GENERATION_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, fmt.Sprintf("GENERATION_TIMEOUT %q", raw))
		} else {
			cfg.Generator.Timeout = d
		}
	}

	cfg.Auth = AuthConfig{
		JWTSecret: req("AUTH_JWT_SECRET"),
		Issuer:    opt("AUTH_ISSUER", ""),
		Audience:  opt("AUTH_AUDIENCE", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, "; "))
	}

	return cfg, nil
}
