package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig. load ./data/config.yaml into viper. a missing file is not an error,
// every key has a default set by the package that reads it.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./data/")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
