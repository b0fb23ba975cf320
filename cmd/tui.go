package cmd

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aftab073/Ai-search-tool/cmd/tui"
	"github.com/Aftab073/Ai-search-tool/internal/theme"
	"github.com/Aftab073/Ai-search-tool/library/config"
	"github.com/Aftab073/Ai-search-tool/library/log"
)

var tuiCMD = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive search console",
	Long: `Launch the interactive Terminal User Interface.

The console lets you:
  • Search the web and YouTube through the AI Search Tool API
  • Filter results by source and sort them by relevance or date
  • Browse, replay and clear your search history
  • Switch between the dark and light theme (remembered across runs)

Keyboard shortcuts:
  enter       Search / open result / replay history entry
  tab         Move focus between input, results and history
  ↑/↓ or j/k  Navigate results and history
  ctrl+f      Cycle source filter
  ctrl+o      Cycle sort order
  ctrl+y      Show / hide history
  ctrl+x      Clear history (history panel)
  ctrl+t      Toggle dark mode
  esc         Back
  ctrl+c      Quit`,
	Args: gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCMD.AddCommand(tuiCMD)
}

// runTUI starts the interactive Terminal User Interface and returns any start/run error.
func runTUI(ctx context.Context) error {
	// console logs would tear the alternate screen
	if !gconfig.Shared.GetBool("debug") {
		if err := log.Logger.ChangeLevel(logSDK.LevelError); err != nil {
			return errors.Wrap(err, "quiet logger")
		}
	}

	api, err := newAPIClient()
	if err != nil {
		return errors.WithStack(err)
	}

	themeCtl, db, err := openThemeController(ctx)
	if err != nil {
		log.Logger.Warn("theme preference unavailable, will not persist", zap.Error(err))
		themeCtl = theme.NewController(ctx, nil)
	} else {
		defer db.Close() // nolint: errcheck
	}

	model := tui.NewModel(tui.Config{
		API:          api,
		Theme:        themeCtl,
		Timeout:      config.Timeout(),
		CompactWidth: config.CompactWidth(),
	})

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // wheel scrolls lists and the detail view
	)

	_, err = p.Run()
	return errors.WithStack(err)
}
