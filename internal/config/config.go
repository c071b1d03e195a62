package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Upstream UpstreamConfig `yaml:"upstream" validate:"required"`
	Engine   EngineConfig   `yaml:"engine"   validate:"required"`
	Session  SessionConfig  `yaml:"session"  validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type UpstreamConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"UPSTREAM_BASE_URL"       env-default:"http://localhost:8000" validate:"required,url"`
	AuthBaseURL   string        `yaml:"auth_base_url"  env:"UPSTREAM_AUTH_BASE_URL"  env-default:"http://localhost:8000/auth" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"UPSTREAM_TIMEOUT"        env-default:"10s" validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"UPSTREAM_RETRY_ATTEMPTS" env-default:"2"   validate:"min=0"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"UPSTREAM_RETRY_DELAY"    env-default:"300ms" validate:"gt=0"`
}

type EngineConfig struct {
	// ConstraintPolicy decides what happens when a participation constraint
	// cannot be resolved: fail_open degrades to the single-participant
	// default, strict blocks the action.
	ConstraintPolicy string `yaml:"constraint_policy" env:"ENGINE_CONSTRAINT_POLICY" env-default:"fail_open" validate:"required,oneof=fail_open strict"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"30m" validate:"required,gt=0"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"  validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
