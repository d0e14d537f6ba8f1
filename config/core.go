// Package config implements opt-in configuration for the categories
// library using https://github.com/spf13/viper. Nothing here runs unless
// the caller invokes Load.
package config

import (
	"strings"

	"github.com/doctaphred/categories/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Contains all the keys for the library's config
const (
	LogLevelKey  = "log_level"
	LogFormatKey = "log_format"
)

// Supported values of LogFormatKey
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// LogLevel is the level applied to the shared logger by the last Load.
var LogLevel = logrus.WarnLevel

// LogFormat is the format applied to the shared logger by the last Load.
var LogFormat = TextFormat

// Load reads the config from CATEGORIES_<key> environment variables
// and applies it to the shared logger.
func Load() error {
	return load(viper.New())
}

func load(v *viper.Viper) error {
	v.SetDefault(LogLevelKey, logrus.WarnLevel.String())
	v.SetDefault(LogFormatKey, TextFormat)

	// Tell viper that the config can be read from CATEGORIES_<entry>
	// environment variables
	v.SetEnvPrefix("CATEGORIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	level, err := logrus.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return errors.Wrapf(err, "invalid %v", LogLevelKey)
	}

	var formatter logrus.Formatter
	format := strings.ToLower(v.GetString(LogFormatKey))
	switch format {
	case TextFormat:
		formatter = &logrus.TextFormatter{}
	case JSONFormat:
		formatter = &logrus.JSONFormatter{}
	default:
		return errors.Errorf("invalid %v %q: must be %q or %q", LogFormatKey, format, TextFormat, JSONFormat)
	}

	log.SetLevel(level)
	log.SetFormatter(formatter)
	LogLevel = level
	LogFormat = format
	return nil
}
