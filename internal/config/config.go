package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	LLM        LLMConfig
	Retry      RetryConfig
	Pipeline   PipelineConfig
	Parser     ParserConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Logger     LoggerConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

// LLMConfig selects and parameterizes the model backend.
type LLMConfig struct {
	Provider    string
	Model       string
	Temperature float64
	Timeout     time.Duration
	APIKey      string
	BaseURL     string
	ServerURL   string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

type PipelineConfig struct {
	CorrectiveAttempts int
	// RunTimeout bounds a whole generation run, retries included.
	RunTimeout time.Duration
	// HintsDefault holds the hint toggle per content kind when a request omits it.
	HintsDefault map[string]bool
}

type ParserConfig struct {
	StrictLengths bool
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type GenerationConfig struct {
	RecordTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

const (
	ProviderOpenAI          = "openai"
	ProviderLangchainOpenAI = "langchain-openai"
	ProviderOllama          = "ollama"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.timeout_ms", 60000)
	v.SetDefault("llm.server_url", "http://localhost:11434")

	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.initial_wait_ms", 500)
	v.SetDefault("retry.max_wait_ms", 8000)
	v.SetDefault("retry.multiplier", 2.0)

	v.SetDefault("pipeline.corrective_attempts", 1)
	v.SetDefault("pipeline.run_timeout_ms", 300000)
	v.SetDefault("pipeline.hints.mcq", false)
	v.SetDefault("pipeline.hints.mcq_trivia", true)
	v.SetDefault("pipeline.hints.mcq_batch", true)
	v.SetDefault("pipeline.hints.coding_quiz", true)
	v.SetDefault("pipeline.hints.drag_drop", true)

	v.SetDefault("parser.strict_lengths", false)

	v.SetDefault("redis.db", 0)
	v.SetDefault("generation.record_ttl", 3600)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "quiz-crew")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// LoadConfig reads config.yaml from the working directory or ./config, when
// present, and applies environment overrides on top of the defaults.
func LoadConfig() (*Config, error) {
	if os.Getenv("ENV") == "test" {
		return Load("../../config", "../../")
	}
	return Load(".", "./config")
}

// Load is LoadConfig with explicit search paths.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("cors.allow_origins"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			Model:       v.GetString("llm.model"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     time.Duration(v.GetInt("llm.timeout_ms")) * time.Millisecond,
			APIKey:      v.GetString("llm.api_key"),
			BaseURL:     v.GetString("llm.base_url"),
			ServerURL:   v.GetString("llm.server_url"),
		},
		Retry: RetryConfig{
			MaxAttempts: v.GetInt("retry.max_attempts"),
			InitialWait: time.Duration(v.GetInt("retry.initial_wait_ms")) * time.Millisecond,
			MaxWait:     time.Duration(v.GetInt("retry.max_wait_ms")) * time.Millisecond,
			Multiplier:  v.GetFloat64("retry.multiplier"),
		},
		Pipeline: PipelineConfig{
			CorrectiveAttempts: v.GetInt("pipeline.corrective_attempts"),
			RunTimeout:         time.Duration(v.GetInt("pipeline.run_timeout_ms")) * time.Millisecond,
			HintsDefault: map[string]bool{
				"mcq":         v.GetBool("pipeline.hints.mcq"),
				"mcq_trivia":  v.GetBool("pipeline.hints.mcq_trivia"),
				"mcq_batch":   v.GetBool("pipeline.hints.mcq_batch"),
				"coding_quiz": v.GetBool("pipeline.hints.coding_quiz"),
				"drag_drop":   v.GetBool("pipeline.hints.drag_drop"),
			},
		},
		Parser: ParserConfig{
			StrictLengths: v.GetBool("parser.strict_lengths"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Generation: GenerationConfig{
			RecordTTL: time.Duration(v.GetInt("generation.record_ttl")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("tracing.enabled"),
			ServiceName: v.GetString("tracing.service_name"),
			Endpoint:    v.GetString("tracing.endpoint"),
			Insecure:    v.GetBool("tracing.insecure"),
			SampleRatio: v.GetFloat64("tracing.sample_ratio"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		config.Server.Port = p
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.APIKey = openAIKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = strings.ToLower(provider)
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		config.Tracing.Endpoint = endpoint
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderLangchainOpenAI, ProviderOllama:
	default:
		errs = append(errs, fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		errs = append(errs, errors.New("llm.model must not be empty"))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature %.2f is outside [0, 2]", c.LLM.Temperature))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout_ms must be positive"))
	}
	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, errors.New("retry.max_attempts must be at least 1"))
	}
	if c.Retry.Multiplier < 1 {
		errs = append(errs, errors.New("retry.multiplier must be at least 1"))
	}
	if c.Retry.InitialWait < 0 || c.Retry.MaxWait < c.Retry.InitialWait {
		errs = append(errs, errors.New("retry.max_wait_ms must be at least retry.initial_wait_ms"))
	}
	if c.Pipeline.RunTimeout < 0 {
		errs = append(errs, errors.New("pipeline.run_timeout_ms must not be negative"))
	}
	if c.Pipeline.CorrectiveAttempts < 0 {
		errs = append(errs, errors.New("pipeline.corrective_attempts must not be negative"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio %.2f is outside [0, 1]", c.Tracing.SampleRatio))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, errors.New("server.port must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// HintsDefaultFor returns the configured hint toggle for a content kind.
func (c *Config) HintsDefaultFor(kind string) bool {
	return c.Pipeline.HintsDefault[kind]
}
