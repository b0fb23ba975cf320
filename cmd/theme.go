package cmd

import (
	"fmt"

	"github.com/Laisky/errors/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/spf13/cobra"
)

var themeCMD = &cobra.Command{
	Use:   "theme",
	Short: "Show or flip the remembered dark mode preference",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return themeShowCMD.RunE(cmd, args)
	},
}

var themeShowCMD = &cobra.Command{
	Use:   "show",
	Short: "Print the current theme",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, db, err := openThemeController(cmd.Context())
		if err != nil {
			return errors.WithStack(err)
		}
		defer db.Close() // nolint: errcheck

		fmt.Fprintln(cmd.OutOrStdout(), themeName(ctl.DarkMode()))
		return nil
	},
}

var themeToggleCMD = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light and remember the choice",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, db, err := openThemeController(cmd.Context())
		if err != nil {
			return errors.WithStack(err)
		}
		defer db.Close() // nolint: errcheck

		fmt.Fprintln(cmd.OutOrStdout(), themeName(ctl.Toggle(cmd.Context())))
		return nil
	},
}

var themeResetCMD = &cobra.Command{
	Use:   "reset",
	Short: "Forget the remembered preference and go back to light",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, db, err := openThemeController(cmd.Context())
		if err != nil {
			return errors.WithStack(err)
		}
		defer db.Close() // nolint: errcheck

		removed, err := ctl.Reset(cmd.Context())
		if err != nil {
			return errors.WithStack(err)
		}

		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "no stored preference, theme is light")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "preference cleared, theme is light")
		return nil
	},
}

func init() {
	rootCMD.AddCommand(themeCMD)
	themeCMD.AddCommand(themeShowCMD, themeToggleCMD, themeResetCMD)
}
