package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	AI       AIConfig
	Log      LogConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port        int
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL         string
	AutoMigrate bool
	MaxIdle     int
	MaxOpenConn int
	MaxLifeTime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type AIConfig struct {
	Provider     string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

type LogConfig struct {
	Level          string
	ElkEnable      bool
	ElkURL         string
	ElkIndex       string
	LogstashEnable bool
	LogstashURL    string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Load reads .env (if present), then config.yml (if present), then the
// process environment. Environment variables win; "database.url" maps to
// DATABASE_URL.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Names the deployment already uses.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL", "POSTGRES_URL")
	_ = v.BindEnv("ai.openai_api_key", "AI_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("ai.gemini_api_key", "AI_GEMINI_API_KEY", "GEMINI_API_KEY")

	setDefaults(v)

	return toModel(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open_conn", 20)
	v.SetDefault("database.max_life_time", "30m")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.openai_model", "gpt-4o")
	v.SetDefault("ai.gemini_model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.elk.index", "healthtrack")
	v.SetDefault("rabbitmq.exchange", "healthtrack.events")
}

func toModel(v *viper.Viper) Config {
	var config Config
	config.Server.Port = v.GetInt("server.port")
	config.Server.CORSOrigins = splitList(v.GetString("server.cors_origins"))
	config.Database.URL = v.GetString("database.url")
	config.Database.AutoMigrate = v.GetBool("database.auto_migrate")
	config.Database.MaxIdle = v.GetInt("database.max_idle")
	config.Database.MaxOpenConn = v.GetInt("database.max_open_conn")
	config.Database.MaxLifeTime = v.GetDuration("database.max_life_time")
	config.JWT.Secret = v.GetString("jwt.secret")
	config.JWT.TTL = v.GetDuration("jwt.ttl")
	config.AI.Provider = strings.ToLower(v.GetString("ai.provider"))
	config.AI.OpenAIAPIKey = v.GetString("ai.openai_api_key")
	config.AI.OpenAIModel = v.GetString("ai.openai_model")
	config.AI.GeminiAPIKey = v.GetString("ai.gemini_api_key")
	config.AI.GeminiModel = v.GetString("ai.gemini_model")
	config.AI.Timeout = v.GetDuration("ai.timeout")
	config.Log.Level = v.GetString("log.level")
	config.Log.ElkEnable = v.GetBool("log.elk.enable")
	config.Log.ElkURL = v.GetString("log.elk.url")
	config.Log.ElkIndex = v.GetString("log.elk.index")
	config.Log.LogstashEnable = v.GetBool("log.logstash.enable")
	config.Log.LogstashURL = v.GetString("log.logstash.url")
	config.RabbitMQ.URL = v.GetString("rabbitmq.url")
	config.RabbitMQ.Exchange = v.GetString("rabbitmq.exchange")
	return config
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.AI.Provider {
	case "openai":
		if c.AI.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using the openai provider")
		}
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when using the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported AI provider %q, use 'openai' or 'gemini'", c.AI.Provider)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
