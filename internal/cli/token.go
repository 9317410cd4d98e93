package cli

import (
	"fmt"

	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a government admin token signed with auth.secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := utils.GenerateAdminToken(
				viper.GetString(constants.ViperSecretKey),
				viper.GetDuration(constants.ViperTokenTTLKey),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", constants.ViperSecretKey, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}
