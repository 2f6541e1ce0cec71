// Package schema defines the configuration structures shared across agetick.
package schema

import "time"

// Configuration is the fully resolved application configuration.
// It is built once by pkg/config and passed explicitly into the prompt and
// ticker entry points; nothing reads configuration from package-level state.
type Configuration struct {
	// DataFile is the path of the persisted birth record.
	DataFile string `yaml:"data_file" json:"data_file" mapstructure:"data_file"`

	// ShowMillis toggles the milliseconds field on the ticker display.
	ShowMillis bool `yaml:"show_millis" json:"show_millis" mapstructure:"show_millis"`

	// TickInterval is the frame budget of the ticker loop.
	TickInterval time.Duration `yaml:"tick_interval" json:"tick_interval" mapstructure:"tick_interval"`

	// Font is the figlet font used for the big digits.
	Font string `yaml:"font" json:"font" mapstructure:"font"`

	Logs Logs `yaml:"logs" json:"logs" mapstructure:"logs"`
}

// Logs configures the logger.
type Logs struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	File  string `yaml:"file" json:"file" mapstructure:"file"`
}
