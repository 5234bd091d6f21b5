package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort     string        `mapstructure:"HTTPPort"`
		Timeout      time.Duration `mapstructure:"HTTPTimeout"`
		ReadTimeout  time.Duration `mapstructure:"readTimeout"`
		WriteTimeout time.Duration `mapstructure:"writeTimeout"`
		IdleTimeout  time.Duration `mapstructure:"idleTimeout"`
	} `mapstructure:"server"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
	LLM       LLMConfig       `mapstructure:"llm"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

type LLMConfig struct {
	Model               string        `mapstructure:"model"`
	APIKey              string        `mapstructure:"apiKey"`
	MaxOutputTokens     int32         `mapstructure:"maxOutputTokens"`
	GenerateTemperature float32       `mapstructure:"generateTemperature"`
	AdjustTemperature   float32       `mapstructure:"adjustTemperature"`
	Timeout             time.Duration `mapstructure:"timeout"` // 0 disables
}

type RateLimitConfig struct {
	Limit           int           `mapstructure:"limit"`
	Window          time.Duration `mapstructure:"window"`
	HighWaterMark   int           `mapstructure:"highWaterMark"`
	Store           string        `mapstructure:"store"` // memory or cache
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
}

// IsDevelopment reports whether the app runs with development logging.
func (c Config) IsDevelopment() bool {
	return c.Mode == "" || c.Mode == "development"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")

	// SERVER_HTTPPORT overrides server.HTTPPort, and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("llm.apiKey", "GOOGLE_GEMINI_API_KEY", "LLM_APIKEY")
	_ = v.BindEnv("mode", "APP_ENV", "MODE")
	return v
}

func InitConfig() (Config, error) {
	v := newViper()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadEmbedded reads only the config compiled into the binary, plus
// environment overrides.
func LoadEmbedded() (Config, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}
