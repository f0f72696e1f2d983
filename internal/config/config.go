package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

type VocabularyConfig struct {
	Path             string
	Watch            bool
	ReloadDebounceMs int
}

type FinderConfig struct {
	Separator      string
	WorkerCount    int
	MaxInputTokens int
	CacheSize      int
}

type Config struct {
	App        AppConfig
	Vocabulary VocabularyConfig
	Finder     FinderConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		Vocabulary: VocabularyConfig{
			Path:             getEnv("VOCABULARY_PATH", ""),
			Watch:            getEnvBool("VOCABULARY_WATCH", false),
			ReloadDebounceMs: getEnvInt("VOCABULARY_RELOAD_DEBOUNCE_MS", 250),
		},
		Finder: FinderConfig{
			Separator:      getEnv("FINDER_SEPARATOR", "|"),
			WorkerCount:    getEnvInt("FINDER_WORKER_COUNT", calculateDefaultWorkerCount()),
			MaxInputTokens: getEnvInt("FINDER_MAX_INPUT_TOKENS", 64),
			CacheSize:      getEnvInt("FINDER_CACHE_SIZE", 512),
		},
	}, nil
}

func (c *Config) Validate() error {
	sep := c.Finder.Separator
	if utf8.RuneCountInString(sep) != 1 {
		return fmt.Errorf("FINDER_SEPARATOR must be a single character, got %q", sep)
	}
	if r, _ := utf8.DecodeRuneInString(sep); unicode.IsSpace(r) {
		return fmt.Errorf("FINDER_SEPARATOR must not be whitespace")
	}
	if c.Finder.WorkerCount < 1 {
		return fmt.Errorf("FINDER_WORKER_COUNT must be at least 1")
	}
	if c.Finder.MaxInputTokens < 1 {
		return fmt.Errorf("FINDER_MAX_INPUT_TOKENS must be at least 1")
	}
	if c.Vocabulary.Watch && c.Vocabulary.Path == "" {
		return fmt.Errorf("VOCABULARY_WATCH requires VOCABULARY_PATH")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func calculateDefaultWorkerCount() int {
	// words are short, more than a few workers only adds scheduling overhead
	return min(max(runtime.NumCPU()/2, 1), 4)
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
