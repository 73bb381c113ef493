package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	SDKGenAI        = "genai"
	SDKGenerativeAI = "generative-ai"
)

type Config struct {
	Env      string
	LogLevel string
	Server   Server
	Database Database
	Gemini   Gemini
	// Number of questions requested from the model per generated interview.
	InterviewQuestionCount int
}

type Server struct {
	Port           string
	AllowedOrigins []string
}

type Database struct {
	URL      string // full DSN; takes precedence over the discrete fields
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Gemini struct {
	APIKey         string
	SDK            string
	InterviewModel string
	FeedbackModel  string
	RequestTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("GEMINI_SDK", SDKGenAI)
	v.SetDefault("GEMINI_INTERVIEW_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_FEEDBACK_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_REQUEST_TIMEOUT", "2m")
	v.SetDefault("INTERVIEW_QUESTION_COUNT", 5)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, falling back to environment")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	var config Config

	config.Env = v.GetString("APP_ENV")
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.URL = v.GetString("DATABASE_URL")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")

	config.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.SDK = strings.ToLower(strings.TrimSpace(v.GetString("GEMINI_SDK")))
	config.Gemini.InterviewModel = v.GetString("GEMINI_INTERVIEW_MODEL")
	config.Gemini.FeedbackModel = v.GetString("GEMINI_FEEDBACK_MODEL")
	config.Gemini.RequestTimeout = v.GetDuration("GEMINI_REQUEST_TIMEOUT")

	config.InterviewQuestionCount = v.GetInt("INTERVIEW_QUESTION_COUNT")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Bool("database_url_set", config.Database.URL != "").
		Str("database_host", config.Database.Host).
		Str("gemini_sdk", config.Gemini.SDK).
		Str("interview_model", config.Gemini.InterviewModel).
		Str("feedback_model", config.Gemini.FeedbackModel).
		Dur("gemini_timeout", config.Gemini.RequestTimeout).
		Bool("gemini_key_set", config.Gemini.APIKey != "").
		Msg("Config loaded")
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Gemini.SDK {
	case SDKGenAI, SDKGenerativeAI:
	default:
		return fmt.Errorf("GEMINI_SDK must be %q or %q, got %q", SDKGenAI, SDKGenerativeAI, c.Gemini.SDK)
	}
	if c.Gemini.RequestTimeout <= 0 {
		return fmt.Errorf("GEMINI_REQUEST_TIMEOUT must be positive")
	}
	if c.InterviewQuestionCount < 1 {
		return fmt.Errorf("INTERVIEW_QUESTION_COUNT must be at least 1")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DSN returns the Postgres connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
