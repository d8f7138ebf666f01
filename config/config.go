package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int

	AllowedOrigins []string
	RateLimitRPS   int

	RoundRobinTimeQuantum int
	MaxProcesses          int
	MaxTotalBurst         int

	LogLevel  string
	LogFormat string

	TracingEnabled bool
	TraceOutput    string
}

// env names for each config key; values from the environment override the YAML file.
var envBindings = map[string]string{
	"port":                               "PORT",
	"host":                               "HOST",
	"server.read_timeout":                "READ_TIMEOUT",
	"server.write_timeout":               "WRITE_TIMEOUT",
	"server.body_limit":                  "BODY_LIMIT",
	"server.allowed_origins":             "ALLOWED_ORIGINS",
	"server.rate_limit_rps":              "RATE_LIMIT_RPS",
	"scheduler.round_robin.time_quantum": "TIME_QUANTUM",
	"scheduler.max_processes":            "MAX_PROCESSES",
	"scheduler.max_total_burst":          "MAX_TOTAL_BURST",
	"log.level":                          "LOG_LEVEL",
	"log.format":                         "LOG_FORMAT",
	"tracing.enabled":                    "TRACING_ENABLED",
	"tracing.output":                     "TRACE_OUTPUT",
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml (optional), .env and the environment once per process.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads configuration from path, or from config.yaml in the working directory when path is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*SchedulerConfig, error) {
	_ = godotenv.Load(envFile())

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		Host:                  v.GetString("host"),
		ReadTimeout:           v.GetDuration("server.read_timeout"),
		WriteTimeout:          v.GetDuration("server.write_timeout"),
		BodyLimit:             v.GetInt("server.body_limit"),
		AllowedOrigins:        splitList(v.GetStringSlice("server.allowed_origins")),
		RateLimitRPS:          v.GetInt("server.rate_limit_rps"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxTotalBurst:         v.GetInt("scheduler.max_total_burst"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		TracingEnabled:        v.GetBool("tracing.enabled"),
		TraceOutput:           v.GetString("tracing.output"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := LoadWithDefaults()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("host", defaults.Host)
	v.SetDefault("server.read_timeout", defaults.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.WriteTimeout)
	v.SetDefault("server.body_limit", defaults.BodyLimit)
	v.SetDefault("server.allowed_origins", defaults.AllowedOrigins)
	v.SetDefault("server.rate_limit_rps", defaults.RateLimitRPS)
	v.SetDefault("scheduler.round_robin.time_quantum", defaults.RoundRobinTimeQuantum)
	v.SetDefault("scheduler.max_processes", defaults.MaxProcesses)
	v.SetDefault("scheduler.max_total_burst", defaults.MaxTotalBurst)
	v.SetDefault("log.level", defaults.LogLevel)
	v.SetDefault("log.format", defaults.LogFormat)
	v.SetDefault("tracing.enabled", defaults.TracingEnabled)
	v.SetDefault("tracing.output", defaults.TraceOutput)
}

// LoadWithDefaults returns the built-in configuration without touching files or the environment.
func LoadWithDefaults() *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  8080,
		Host:                  "0.0.0.0",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		BodyLimit:             1 << 20,
		AllowedOrigins:        []string{"*"},
		RateLimitRPS:          100,
		RoundRobinTimeQuantum: 2,
		MaxProcesses:          10000,
		MaxTotalBurst:         10_000_000,
		LogLevel:              "info",
		LogFormat:             "text",
	}
}

func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be at least 1, got %d", c.RoundRobinTimeQuantum)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

func envFile() string {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		return envFile
	}
	return ".env"
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
