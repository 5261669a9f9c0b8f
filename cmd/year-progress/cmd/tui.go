package cmd

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"year-progress/internal/progress"
	"year-progress/internal/session"
	"year-progress/internal/share"
	"year-progress/internal/theme"
	"year-progress/internal/tui"

	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Show the year progress in the terminal",
	Example: "year-progress tui --log-file /tmp/year-progress.log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runTUI(ctx)
	},
}

func init() {
	RootCmd.AddCommand(tuiCmd)
}

// terminalProvider reads the terminal background once; terminals do not
// announce later changes.
func terminalProvider() theme.Provider {
	if lipgloss.HasDarkBackground() {
		return theme.Static(fynetheme.VariantDark)
	}
	return theme.Static(fynetheme.VariantLight)
}

func runTUI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Log lines would corrupt the alternate screen, so only a log file is used.
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	policy := progress.PolicyFor(cfg.Year)
	model := tui.New(tui.Options{
		NewSession: func() *session.Session {
			return session.New(session.Options{Policy: policy, Logger: log})
		},
		Share:  share.NewService(nil, share.SystemClipboard{}, log),
		Dark:   theme.Resolve(cfg.Theme, terminalProvider()) == fynetheme.VariantDark,
		Logger: log,
	})

	return tui.Run(ctx, model)
}
