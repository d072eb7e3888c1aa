package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// loadSettings reads the file given by --config, or the first one found in
// the default locations. Without any file it returns a copy of defaults.
func loadSettings(cmd *cobra.Command, defaults *entities.Settings) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found (%v), using defaults", err)
			settings := *defaults
			return &settings, nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}
