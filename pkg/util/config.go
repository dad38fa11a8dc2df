package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads config.{yaml,json,toml} from configDir into viper.
func ReadConfig(configDir string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
