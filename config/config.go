package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Knowledge graph
	Neo4j Neo4jConfig

	// Email delivery
	Mail MailConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	Steps     StepsConfig      `yaml:"steps"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"` // ollama | gemini | openai | deepseek | qwen
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`

	// Vertex AI (gemini only)
	Project         string `yaml:"project,omitempty"`
	Location        string `yaml:"location,omitempty"`
	CredentialsPath string `yaml:"credentials_path,omitempty"`
}

// StepsConfig binds each pipeline step to a provider name
type StepsConfig struct {
	Router  string `yaml:"router"`
	Cypher  string `yaml:"cypher"`
	Summary string `yaml:"summary"`
	Email   string `yaml:"email"`
}

type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

const (
	MailTransportSMTP  = "smtp"
	MailTransportGmail = "gmail"
	MailTransportNone  = "none"
)

type MailConfig struct {
	Transport string
	Sender    string
	Tone      string
	SMTP      SMTPConfig
	Gmail     GmailConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Password string
}

type GmailConfig struct {
	CredentialsPath string
	TokenPath       string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Neo4j
	cfg.Neo4j.URI = viper.GetString("neo4j.uri")
	cfg.Neo4j.Username = viper.GetString("neo4j.username")
	cfg.Neo4j.Password = viper.GetString("neo4j.password")
	cfg.Neo4j.Database = viper.GetString("neo4j.database")
	if uri := viper.GetString("neo4j_uri"); uri != "" {
		cfg.Neo4j.URI = uri
	}
	if user := viper.GetString("neo4j_user"); user != "" {
		cfg.Neo4j.Username = user
	}
	if pass := viper.GetString("neo4j_pass"); pass != "" {
		cfg.Neo4j.Password = pass
	}

	// Mail
	cfg.Mail.Transport = strings.ToLower(viper.GetString("mail.transport"))
	cfg.Mail.Sender = viper.GetString("mail.sender")
	cfg.Mail.Tone = viper.GetString("mail.tone")
	cfg.Mail.SMTP.Host = viper.GetString("mail.smtp.host")
	cfg.Mail.SMTP.Port = viper.GetInt("mail.smtp.port")
	cfg.Mail.SMTP.Password = viper.GetString("mail.smtp.password")
	cfg.Mail.Gmail.CredentialsPath = viper.GetString("mail.gmail.credentials_path")
	cfg.Mail.Gmail.TokenPath = viper.GetString("mail.gmail.token_path")
	if sender := viper.GetString("smtp_sender"); sender != "" {
		cfg.Mail.Sender = sender
	}
	if pass := viper.GetString("smtp_app_pass"); pass != "" {
		cfg.Mail.SMTP.Password = pass
	}

	// LLM Provider Abstraction
	cfg.LLM.Steps.Router = viper.GetString("llm.steps.router")
	cfg.LLM.Steps.Cypher = viper.GetString("llm.steps.cypher")
	cfg.LLM.Steps.Summary = viper.GetString("llm.steps.summary")
	cfg.LLM.Steps.Email = viper.GetString("llm.steps.email")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:            getStringFromMap(providerMap, "name"),
						Kind:            strings.ToLower(getStringFromMap(providerMap, "kind")),
						Enabled:         getBoolFromMap(providerMap, "enabled"),
						APIKey:          expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:         expandEnvVar(getStringFromMap(providerMap, "base_url")),
						Model:           getStringFromMap(providerMap, "model"),
						Timeout:         getStringFromMap(providerMap, "timeout"),
						Project:         expandEnvVar(getStringFromMap(providerMap, "project")),
						Location:        getStringFromMap(providerMap, "location"),
						CredentialsPath: expandEnvVar(getStringFromMap(providerMap, "credentials_path")),
					}
					if provider.Kind == "" {
						provider.Kind = provider.Name
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := validateMailConfig(&cfg.Mail); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.burst", 5)

	viper.SetDefault("neo4j.uri", "neo4j://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.database", "neo4j")

	viper.SetDefault("mail.transport", MailTransportSMTP)
	viper.SetDefault("mail.tone", "professional")
	viper.SetDefault("mail.smtp.host", "smtp.gmail.com")
	viper.SetDefault("mail.smtp.port", 587)
	viper.SetDefault("mail.gmail.credentials_path", "credentials.json")
	viper.SetDefault("mail.gmail.token_path", "token.json")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabled := make(map[string]bool)
	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if enabled[provider.Name] {
			return fmt.Errorf("provider %s: duplicate name", provider.Name)
		}
		if provider.Enabled {
			enabled[provider.Name] = true
		}
	}

	if len(enabled) == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	steps := map[string]string{
		"router":  cfg.Steps.Router,
		"cypher":  cfg.Steps.Cypher,
		"summary": cfg.Steps.Summary,
		"email":   cfg.Steps.Email,
	}
	for step, name := range steps {
		if name == "" {
			return fmt.Errorf("llm.steps.%s: provider is required", step)
		}
		if !enabled[name] {
			return fmt.Errorf("llm.steps.%s: provider %q is not an enabled provider", step, name)
		}
	}

	return nil
}

// validateMailConfig validates the email delivery configuration
func validateMailConfig(cfg *MailConfig) error {
	switch cfg.Transport {
	case MailTransportSMTP:
		if cfg.Sender == "" {
			return fmt.Errorf("mail.sender is required for smtp transport")
		}
		if cfg.SMTP.Host == "" || cfg.SMTP.Port <= 0 {
			return fmt.Errorf("mail.smtp host and port are required")
		}
	case MailTransportGmail:
		if cfg.Sender == "" {
			return fmt.Errorf("mail.sender is required for gmail transport")
		}
	case MailTransportNone:
	default:
		return fmt.Errorf("unknown mail transport: %q", cfg.Transport)
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
