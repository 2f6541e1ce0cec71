// Package config resolves the agetick configuration.
//
// Sources are merged in the following order, later sources winning:
// built-in defaults, an optional config file, `AGETICK_*` environment
// variables, and command-line flags (applied by the caller on the returned
// struct).
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	errUtils "github.com/agetick/agetick/errors"
	"github.com/agetick/agetick/pkg/dob"
	log "github.com/agetick/agetick/pkg/logger"
	"github.com/agetick/agetick/pkg/schema"
)

const (
	configName = "agetick"
	configType = "yaml"
	envPrefix  = "AGETICK"

	// DefaultTickInterval is the ticker frame budget. 20ms keeps the display
	// updating at sub-second granularity without busy-looping.
	DefaultTickInterval = 20 * time.Millisecond

	// DefaultFont is the figlet font used for the big digits.
	DefaultFont = "banner"
)

// Load resolves the configuration. A missing config file is not an error;
// a malformed one is.
func Load() (schema.Configuration, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)

	// Search the XDG config dir first, then the current directory.
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, configName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errUtils.As(err, &notFound) {
			return schema.Configuration{}, errUtils.Wrap(err, "read config file")
		}
	} else {
		log.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg schema.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return schema.Configuration{}, errUtils.Wrap(err, "unmarshal config")
	}

	if cfg.DataFile == "" {
		cfg.DataFile = dob.DefaultPath()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", "")
	v.SetDefault("show_millis", false)
	v.SetDefault("tick_interval", DefaultTickInterval)
	v.SetDefault("font", DefaultFont)
	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.file", "")
}
