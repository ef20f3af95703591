// Package config reads the configuration of the assistant. Every setting has a default, may be
// given in a YAML, JSON or TOML file and may be overridden by an ASSISTANT_* environment variable,
// for example ASSISTANT_STORAGE_DRIVER for storage.driver. String values may reference environment
// variables as ${VAR} or ${VAR:-default}.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that override configuration keys.
const EnvPrefix = "ASSISTANT"

// envReference matches ${VAR} and ${VAR:-default}.
var envReference = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// defaults are applied before the configuration file is read. The DSN is assembled from the same
// DBUSER, DBPWD and DBHOST variables that the database tools use.
var defaults = map[string]any{
	"storage.driver":          DriverFile,
	"storage.data_dir":        ".",
	"storage.dsn":             "${DBUSER}:${DBPWD}@tcp(${DBHOST})/test?parseTime=true",
	"logger.level":            "info",
	"logger.path":             "assistant.log",
	"ui.color":                true,
	"ui.suggestion_threshold": 60,
	"ui.prompt":               "Enter a command: ",
}

// expandEnvWithDefaults replaces every ${VAR:-default} with the value of the environment variable,
// or with the default if the variable is unset or empty.
func expandEnvWithDefaults(s string) string {
	return envReference.ReplaceAllStringFunc(s, func(match string) string {
		matches := envReference.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}
		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// Load returns the configuration. If configFile is empty, only the defaults and the environment
// are used.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if !strings.Contains(value, "${") {
			continue
		}
		expanded := expandEnvWithDefaults(value)
		if expanded == "true" || expanded == "false" {
			boolValue, _ := strconv.ParseBool(expanded)
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every section is present and holds allowed values.
func (c *Config) Validate() error {
	if c.Storage == nil || c.Logger == nil || c.UI == nil {
		return fmt.Errorf("invalid configuration: missing section")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	for _, section := range []any{c.Storage, c.Logger, c.UI} {
		if err := validate.Struct(section); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}
