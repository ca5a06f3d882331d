package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // sqlite or mysql
	Path   string // sqlite file path
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Auth struct {
	TokenTTL time.Duration
}

type Translate struct {
	URL     string
	APIHost string
	APIKey  string
	Source  string
	Target  string
	Timeout time.Duration
}

type Config struct {
	HTTP      HTTP
	DB        DB
	Auth      Auth
	Translate Translate
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 9400)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "notes.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "simple_notes")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("translate.url", "https://deep-translate1.p.rapidapi.com/language/translate/v2")
	v.SetDefault("translate.api_host", "deep-translate1.p.rapidapi.com")
	v.SetDefault("translate.source", "ru")
	v.SetDefault("translate.target", "en")
	v.SetDefault("translate.timeout_seconds", 5)

	// API key comes from the environment in deployments.
	_ = v.BindEnv("translate.api_key", "DEEP_TRANSLATE_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Auth: Auth{TokenTTL: time.Duration(v.GetInt("auth.token_ttl_hours")) * time.Hour},
		Translate: Translate{
			URL:     v.GetString("translate.url"),
			APIHost: v.GetString("translate.api_host"),
			APIKey:  v.GetString("translate.api_key"),
			Source:  v.GetString("translate.source"),
			Target:  v.GetString("translate.target"),
			Timeout: time.Duration(v.GetInt("translate.timeout_seconds")) * time.Second,
		},
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Translate.Timeout <= 0 {
		cfg.Translate.Timeout = 5 * time.Second
	}
	return cfg, nil
}
