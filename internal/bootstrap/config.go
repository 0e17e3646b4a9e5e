// path: internal/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the process settings read at startup.
type Config struct {
	GameVariant string `mapstructure:"GAME_VARIANT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`
}

// Setup resolves the configuration from defaults, overlaid by an optional
// env-format file when path is not empty.
func Setup(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("GAME_VARIANT", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &config, nil
}
