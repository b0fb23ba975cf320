package cmd

import (
	"github.com/Laisky/errors/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/spf13/cobra"
)

var pingCMD = &cobra.Command{
	Use:   "ping",
	Short: "Check the backend is up",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return errors.WithStack(err)
		}

		health, err := api.Health(cmd.Context())
		if err != nil {
			return errors.Wrapf(err, "ping %s", api.BaseURL())
		}

		printHealth(cmd.OutOrStdout(), api.BaseURL(), health)
		return nil
	},
}

func init() {
	rootCMD.AddCommand(pingCMD)
}
