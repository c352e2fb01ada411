package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/dcshell/core/config"
	"github.com/josephlewis42/dcshell/core/vos"
)

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)
		path, _ := configPath(cmd, &vos.OSEnv{})

		return config.Initialize(afero.NewOsFs(), path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
