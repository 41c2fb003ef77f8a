// Package config loads mdfixtures settings from defaults, an optional YAML
// file, MDFIXTURES_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MDFIXTURES_LOG_LEVEL.
const EnvPrefix = "MDFIXTURES"

// Config holds all CLI settings. Keys match the flag names. LogLevel is not
// restricted here: NewLogger falls back to info and warns on unknown levels.
type Config struct {
	LogLevel  string        `mapstructure:"log_level" validate:"required"`
	Sections  int           `mapstructure:"sections" validate:"gte=0,lte=100000"`
	OutputDir string        `mapstructure:"output_dir"`
	Width     int           `mapstructure:"width" validate:"gte=20,lte=400"`
	Style     string        `mapstructure:"style" validate:"oneof=notty ascii dark light dracula pink tokyo-night"`
	ChunkSize int           `mapstructure:"chunk_size" validate:"gte=1"`
	Interval  time.Duration `mapstructure:"interval" validate:"gte=0"`
}

// Defaults are applied before any file, env or flag value.
var Defaults = map[string]any{
	"log_level":  "info",
	"sections":   18,
	"output_dir": "",
	"width":      80,
	"style":      "notty",
	"chunk_size": 4,
	"interval":   30 * time.Millisecond,
}

var validate = validator.New()

// Load reads configuration into a Config. path names an optional YAML file;
// when empty no file is read. Flags bound to v before the call take
// precedence over environment variables, which take precedence over the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	for key, val := range Defaults {
		v.SetDefault(key, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
			}
			return nil, fmt.Errorf("invalid config: %s", strings.Join(fields, "; "))
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
