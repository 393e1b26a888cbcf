package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "ATLAS"

type Config struct {
	Server      ServerConfig     `mapstructure:"server"`
	Data        DataConfig       `mapstructure:"data"`
	Chart       ChartConfig      `mapstructure:"chart"`
	Tabs        TabsConfig       `mapstructure:"tabs"`
	Annotations AnnotationConfig `mapstructure:"annotations"`
	Watch       WatchConfig      `mapstructure:"watch"`
	Store       StoreConfig      `mapstructure:"store"`
	Import      ImportConfig     `mapstructure:"import"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DataConfig struct {
	// Source is a file path or a file, http(s), s3 or duckdb URL.
	Source string `mapstructure:"source"`
}

type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type TabsConfig struct {
	Default   string `mapstructure:"default"`
	Highlight string `mapstructure:"highlight"`
}

type AnnotationConfig struct {
	Path string `mapstructure:"path"`
}

type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StoreConfig struct {
	DbPath string `mapstructure:"db_path"`
}

type ImportConfig struct {
	Schedule string `mapstructure:"schedule"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("data.source", "data.csv")
	v.SetDefault("chart.width", 1200)
	v.SetDefault("chart.height", 700)
	v.SetDefault("tabs.default", "")
	v.SetDefault("tabs.highlight", "#ccc")
	v.SetDefault("annotations.path", "")
	v.SetDefault("watch.enabled", false)
	v.SetDefault("store.db_path", "atlas.duckdb")
	v.SetDefault("import.schedule", "")
}

// LoadConfig reads defaults, then the optional config file, then the
// environment. ATLAS_SERVER_PORT overrides server.port, and the plain
// SERVER_HOST and SERVER_PORT variables are honoured too.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.host", EnvPrefix+"_SERVER_HOST", "SERVER_HOST"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "SERVER_PORT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}
	if cfg.Data.Source == "" {
		return nil, fmt.Errorf("data.source must be set")
	}
	return &cfg, nil
}
