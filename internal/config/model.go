package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChadProbert/celerity/model"
)

// Config holds all configuration for the application.
type Config struct {
	// server settings
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`
	DataDir    string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`

	// user preferences, also mutable at runtime through the settings API
	Theme           string `mapstructure:"theme" yaml:"theme"`
	TabBehavior     string `mapstructure:"tab_behavior" yaml:"tab_behavior"`
	SearchEngine    string `mapstructure:"search_engine" yaml:"search_engine"`
	SearchDelimiter string `mapstructure:"search_delimiter" yaml:"search_delimiter"`
	PathDelimiter   string `mapstructure:"path_delimiter" yaml:"path_delimiter"`
	SuggestionLimit int    `mapstructure:"suggestion_limit" yaml:"suggestion_limit"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	s := model.DefaultSettings()
	return &Config{
		ListenAddr:      "127.0.0.1:8462",
		DataDir:         "",
		LogLevel:        "info",
		Theme:           s.Theme,
		TabBehavior:     s.TabBehavior,
		SearchEngine:    s.SearchEngine,
		SearchDelimiter: s.SearchDelimiter,
		PathDelimiter:   s.PathDelimiter,
		SuggestionLimit: s.SuggestionLimit,
	}
}

// Settings is the resolver-facing snapshot of the preference fields.
func (c *Config) Settings() model.Settings {
	return model.Settings{
		Theme:           c.Theme,
		TabBehavior:     c.TabBehavior,
		SearchEngine:    c.SearchEngine,
		SearchDelimiter: c.SearchDelimiter,
		PathDelimiter:   c.PathDelimiter,
		SuggestionLimit: c.SuggestionLimit,
	}
}

// BindFlags binds CLI flags to the cobra command.
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("listen-addr", "l", defaults.ListenAddr, "Address the new tab backend listens on")
	cmd.PersistentFlags().String("data-dir", defaults.DataDir, "Directory for commands and settings (default ~/.config/celerity)")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("theme", defaults.Theme, "UI theme handed to the new tab page")
	cmd.PersistentFlags().String("tab-behavior", defaults.TabBehavior, "Open links in a \"new\" or the \"current\" tab")
	cmd.PersistentFlags().String("search-engine", defaults.SearchEngine, "Default search engine (google, duckduckgo)")
	cmd.PersistentFlags().String("search-delimiter", defaults.SearchDelimiter, "Delimiter between a key and its search text")
	cmd.PersistentFlags().String("path-delimiter", defaults.PathDelimiter, "Delimiter between a key and a literal path")
	cmd.PersistentFlags().IntP("suggestion-limit", "n", defaults.SuggestionLimit, "Maximum suggestions returned per query")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration.
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("tab_behavior", defaults.TabBehavior)
	v.SetDefault("search_engine", defaults.SearchEngine)
	v.SetDefault("search_delimiter", defaults.SearchDelimiter)
	v.SetDefault("path_delimiter", defaults.PathDelimiter)
	v.SetDefault("suggestion_limit", defaults.SuggestionLimit)
}

// SetViperEnvSettings configures viper environment variable settings.
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix("CELERITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
