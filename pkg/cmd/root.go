package cmd

import (
	"perfumeHelper/pkg/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "perfume",
	Short:         "Perfume Weather Helper picks a perfume for the current weather",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := logging.LoadConfig()
		if err != nil {
			return err
		}

		validationErr := cfg.Validate()
		if validationErr.HasErrors() {
			return validationErr
		}

		logging.Init(cfg)

		return nil
	},
}

func Execute() error {
	initVersionCmd()
	initAskCmd()
	initTelegramCmd()
	initMigrateCmd()
	initBcryptCmd()

	return rootCmd.Execute()
}
