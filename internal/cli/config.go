package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/vitrine/internal/server"
	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// Config is the application configuration, loaded from vitrine.yaml in the
// working directory and VITRINE_* environment variables. Command flags
// override configuration values.
type Config struct {
	Output string `mapstructure:"output"` // artifact output directory
	Addr   string `mapstructure:"addr"`   // preview server listen address
	Assets string `mapstructure:"assets"` // static assets directory copied into output

	Source SourceConfig `mapstructure:"source"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Render RenderConfig `mapstructure:"render"`
}

// SourceConfig selects where the content model is loaded from.
type SourceConfig struct {
	Kind       string `mapstructure:"kind"` // file, dir, or mongo
	Path       string `mapstructure:"path"`
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
	Page       string `mapstructure:"page"`
}

// CacheConfig selects the build cache backend.
type CacheConfig struct {
	Backend string      `mapstructure:"backend"` // file, redis, or none
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the redis backend connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RenderConfig holds the render options shared by build and serve.
type RenderConfig struct {
	Widths    []int    `mapstructure:"widths"`
	Artifacts []string `mapstructure:"artifacts"`
	NavToggle string   `mapstructure:"nav_toggle"`
	Generator bool     `mapstructure:"generator"`
	InlineCSS bool     `mapstructure:"inline_css"`
	ExtraCSS  string   `mapstructure:"extra_css"` // path to a CSS file appended to the stylesheet
	Rules     string   `mapstructure:"rules"`     // path to a layout rules override file
}

// loadConfig reads vitrine.yaml (or the explicitly given file) and the
// environment. A missing default config file is fine; every value has a
// usable default.
func loadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", "dist")
	v.SetDefault("addr", server.DefaultAddr)
	v.SetDefault("assets", "")
	v.SetDefault("source.kind", source.KindFile)
	v.SetDefault("source.path", "site.toml")
	v.SetDefault("source.uri", "")
	v.SetDefault("source.database", "")
	v.SetDefault("source.collection", "")
	v.SetDefault("source.page", "")
	v.SetDefault("cache.backend", "file")
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("render.widths", []int(nil))
	v.SetDefault("render.artifacts", []string(nil))
	v.SetDefault("render.nav_toggle", "")
	v.SetDefault("render.generator", true)
	v.SetDefault("render.inline_css", false)
	v.SetDefault("render.extra_css", "")
	v.SetDefault("render.rules", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vitrine")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VITRINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// The default vitrine.yaml is optional; an explicitly named file is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// sourceConfig converts the configured source into the pipeline's form.
func (cfg *Config) sourceConfig() source.Config {
	return source.Config{
		Kind:       cfg.Source.Kind,
		Path:       cfg.Source.Path,
		URI:        cfg.Source.URI,
		Database:   cfg.Source.Database,
		Collection: cfg.Source.Collection,
		Page:       cfg.Source.Page,
	}
}

// pipelineOptions assembles pipeline options from the configuration. The
// extra CSS file, when configured, is read here so the pipeline only deals
// in values.
func (cfg *Config) pipelineOptions(logger *log.Logger) (pipeline.Options, error) {
	opts := pipeline.Options{
		Source:    cfg.sourceConfig(),
		Widths:    cfg.Render.Widths,
		Artifacts: cfg.Render.Artifacts,
		NavToggle: cfg.Render.NavToggle,
		Generator: cfg.Render.Generator,
		InlineCSS: cfg.Render.InlineCSS,
		Logger:    logger,
	}
	if cfg.Render.ExtraCSS != "" {
		data, err := os.ReadFile(cfg.Render.ExtraCSS)
		if err != nil {
			return opts, fmt.Errorf("read extra css: %w", err)
		}
		opts.ExtraCSS = string(data)
	}
	return opts, nil
}
