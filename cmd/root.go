// Package cmd command line
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Aftab073/Ai-search-tool/library/config"
	"github.com/Aftab073/Ai-search-tool/library/log"
)

var rootCMD = &cobra.Command{
	Use:   "aisearch",
	Short: "aisearch",
	Long:  `terminal client for the AI Search Tool API`,
	Args:  gcmd.NoExtraArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd.Context(), cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
	SilenceUsage: true,
}

func initialize(ctx context.Context, cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	if err := setupSettings(ctx); err != nil {
		return errors.Wrap(err, "setup settings")
	}
	if err := setupLogger(ctx); err != nil {
		return errors.Wrap(err, "setup logger")
	}

	return nil
}

func setupSettings(_ context.Context) error {
	// mode
	if gconfig.Shared.GetBool("debug") {
		gconfig.Shared.Set("log-level", "debug")
	}

	// load configuration
	if err := config.LoadFromFile(gconfig.Shared.GetString("config")); err != nil {
		return errors.WithStack(err)
	}

	// flags override the file
	if v := gconfig.Shared.GetString("api-url"); v != "" {
		gconfig.Shared.Set(config.KeyAPIBaseURL, v)
	}
	if v := gconfig.Shared.GetString("state-db"); v != "" {
		gconfig.Shared.Set(config.KeyStateDBPath, v)
	}

	if err := validateStartupConfig(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func setupLogger(_ context.Context) error {
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.Logger.ChangeLevel(logSDK.Level(lvl)); err != nil {
		return errors.Wrapf(err, "change log level to %q", lvl)
	}

	log.Logger.Debug("logger ready", zap.String("level", lvl))
	return nil
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().StringP("config", "c", "", "optional config file path")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/warn/error`")
	rootCMD.PersistentFlags().String("api-url", "",
		fmt.Sprintf("backend base url, falls back to $%s then %s", config.EnvAPIURL, config.DefaultAPIURL))
	rootCMD.PersistentFlags().String("state-db", "", "sqlite file keeping local preferences")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
