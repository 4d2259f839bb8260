package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Exchange ExchangeConfig
	Runtime  RuntimeConfig
}

type ExchangeConfig struct {
	BaseUrl         string
	ApiKey          string
	Secret          string
	Proxy           map[string]string
	Timeout         time.Duration
	DefaultSymbol   string
	DefaultCurrency string
}

type RuntimeConfig struct {
	Log LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var envPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Load reads config.{yaml,json,toml} from the given directories, "configs"
// and the working directory by default. A missing file is not an error:
// defaults and BFX_* environment variables still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")

	v.SetEnvPrefix("BFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("Не удалось прочитать конфигурацию: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("exchange.base_url", "https://api.bitfinex.com/")
	v.SetDefault("exchange.timeout", 15*time.Second)
	v.SetDefault("exchange.default_symbol", "btcusd")
	v.SetDefault("exchange.default_currency", "usd")
	v.SetDefault("runtime.log.level", "info")
	v.SetDefault("runtime.log.format", "text")
	v.SetDefault("runtime.log.file", "stdout")
	v.SetDefault("runtime.log.max_size", 50)
	v.SetDefault("runtime.log.max_backups", 3)
	v.SetDefault("runtime.log.max_age", 28)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Exchange = ExchangeConfig{
		BaseUrl:         v.GetString("exchange.base_url"),
		ApiKey:          envSub(v, "exchange.api_key"),
		Secret:          envSub(v, "exchange.secret"),
		Proxy:           v.GetStringMapString("exchange.proxy"),
		Timeout:         v.GetDuration("exchange.timeout"),
		DefaultSymbol:   v.GetString("exchange.default_symbol"),
		DefaultCurrency: v.GetString("exchange.default_currency"),
	}

	cfg.Runtime = RuntimeConfig{
		Log: LogConfig{
			Level:      v.GetString("runtime.log.level"),
			Format:     v.GetString("runtime.log.format"),
			File:       v.GetString("runtime.log.file"),
			MaxSize:    v.GetInt("runtime.log.max_size"),
			MaxBackups: v.GetInt("runtime.log.max_backups"),
			MaxAge:     v.GetInt("runtime.log.max_age"),
			Compress:   v.GetBool("runtime.log.compress"),
		},
	}

	return cfg
}

// HasCredentials reports whether both halves of the API key pair are set.
func (c ExchangeConfig) HasCredentials() bool {
	return c.ApiKey != "" && c.Secret != ""
}

func envSub(v *viper.Viper, key string) string {
	val := v.GetString(key)
	if val == "" {
		return ""
	}

	return envPattern.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
