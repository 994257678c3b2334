package config

import "github.com/spf13/viper"

// flag names use kebab-case while config keys use snake_case; viper
// needs the alias to treat them as the same setting.
var flagKeyAliases = map[string]string{
	"listen-addr":      "listen_addr",
	"data-dir":         "data_dir",
	"log-level":        "log_level",
	"tab-behavior":     "tab_behavior",
	"search-engine":    "search_engine",
	"search-delimiter": "search_delimiter",
	"path-delimiter":   "path_delimiter",
	"suggestion-limit": "suggestion_limit",
}

func registerFlagKeyAliases(v *viper.Viper) {
	for flag, key := range flagKeyAliases {
		v.RegisterAlias(flag, key)
	}
}
