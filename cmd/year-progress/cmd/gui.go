package cmd

import (
	"context"
	"os"

	"year-progress/internal/app"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:     "gui",
	Short:   "Show the year progress widget in a window",
	Example: "year-progress gui --theme dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI(cmd.Context())
	},
}

func init() {
	guiCmd.Flags().String("share", "auto", "share method: auto (mail client, then clipboard) or clipboard")
	_ = settings.BindPFlag("share.method", guiCmd.Flags().Lookup("share"))
	RootCmd.AddCommand(guiCmd)
}

func runGUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Application", err, nil)
		return err
	}
	return application.Run(ctx)
}
