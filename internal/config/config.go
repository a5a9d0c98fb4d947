package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// AI provider identifiers.
const (
	ProviderOpenAI = "openai"
	ProviderArk    = "ark"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Chat    ChatConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		AI:      ai,
		Chat:    chat,
		Metrics: MetricsConfig{LogPath: getEnvOrDefault("METRICS_LOG_PATH", "logs/metadata.log")},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the external generator. A missing credential is not
// an error: the service degrades to template-only mode.
type AIConfig struct {
	Provider    string
	OpenAIKey   string
	OpenAIModel string
	ArkAPIKey   string
	ArkModel    string
	ArkBaseURL  string
	ArkRegion   string
	Temperature *float64
	MaxTokens   *int
	Timeout     time.Duration
}

// ResolveProvider picks the backend: an explicit AI_PROVIDER wins,
// otherwise whichever credential is present, OpenAI first. Empty means
// no generator is configured.
func (c AIConfig) ResolveProvider() string {
	if c.Provider != "" {
		return c.Provider
	}
	if c.OpenAIKey != "" {
		return ProviderOpenAI
	}
	if c.ArkAPIKey != "" && c.ArkModel != "" {
		return ProviderArk
	}
	return ""
}

// Enabled reports whether any generator credential is configured.
func (c AIConfig) Enabled() bool {
	return c.ResolveProvider() != ""
}

// NewArkChatModel creates an Ark model instance from this config.
func (c AIConfig) NewArkChatModel(ctx context.Context) (model.ChatModel, error) {
	if c.ArkAPIKey == "" || c.ArkModel == "" {
		return nil, fmt.Errorf("ark credentials missing: set ARK_API_KEY and ARK_MODEL")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.ArkBaseURL,
		Region:      c.ArkRegion,
		APIKey:      c.ArkAPIKey,
		Model:       c.ArkModel,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := 15
	if override, err := parseOptionalIntEnv("AI_TIMEOUT"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
	switch provider {
	case "", ProviderOpenAI, ProviderArk:
	default:
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value %q", provider)
	}

	return AIConfig{
		Provider:    provider,
		OpenAIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel: getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		ArkAPIKey:   strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkModel:    strings.TrimSpace(os.Getenv("ARK_MODEL")),
		ArkBaseURL:  getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:   getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// ChatConfig tunes session memory.
type ChatConfig struct {
	MaxHistory     int
	SessionTimeout time.Duration
	SweepInterval  time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	maxHistory := 10
	if override, err := parseOptionalIntEnv("MAX_HISTORY"); err != nil {
		return ChatConfig{}, err
	} else if override != nil {
		if *override < 1 {
			maxHistory = 1
		} else {
			maxHistory = *override
		}
	}

	timeoutMinutes := 30
	if override, err := parseOptionalIntEnv("SESSION_TIMEOUT"); err != nil {
		return ChatConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutMinutes = *override
	}

	sweepMinutes := 5
	if override, err := parseOptionalIntEnv("SESSION_SWEEP_INTERVAL"); err != nil {
		return ChatConfig{}, err
	} else if override != nil && *override > 0 {
		sweepMinutes = *override
	}

	return ChatConfig{
		MaxHistory:     maxHistory,
		SessionTimeout: time.Duration(timeoutMinutes) * time.Minute,
		SweepInterval:  time.Duration(sweepMinutes) * time.Minute,
	}, nil
}

// MetricsConfig locates the anonymized metadata log.
type MetricsConfig struct {
	LogPath string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
