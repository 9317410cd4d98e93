package cli

import (
	"fmt"

	"github.com/ougirez/coalportal/internal/pkg/config"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "portal",
		Short:         "Coal compliance portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(opts.ConfigPath); err != nil {
				return err
			}
			if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetString(constants.ViperLogEncodingKey)); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	_ = viper.BindPFlag(constants.ViperLogLevelKey, cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewGenDataCommand())
	cmd.AddCommand(NewTokenCommand())

	return cmd
}
