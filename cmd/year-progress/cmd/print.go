package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"year-progress/internal/progress"
	"year-progress/internal/share"
	"year-progress/internal/views"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var printShare bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the year progress once and exit",
	Example: `year-progress print
year-progress print --share
year-progress print --year 2024`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrint(cmd.Context(), cmd.OutOrStdout(), time.Now(), share.SystemClipboard{})
	},
}

func init() {
	printCmd.Flags().BoolVar(&printShare, "share", false, "copy the share summary to the clipboard")
	RootCmd.AddCommand(printCmd)
}

func runPrint(ctx context.Context, out io.Writer, now time.Time, clipboard share.Clipboard) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	stats := progress.At(progress.PolicyFor(cfg.Year), now)
	fmt.Fprint(out, renderPlain(stats))
	fmt.Fprintf(out, "\n%s\n", share.Summary(stats))

	if !printShare {
		return nil
	}

	outcome, err := share.NewService(nil, clipboard, log).Share(ctx, stats)
	fmt.Fprintln(out, share.Notice(outcome, err))
	return err
}

// renderPlain is the one-shot text rendition of stats.
func renderPlain(stats progress.Stats) string {
	year := stats.Interval.Year()

	var b strings.Builder
	fmt.Fprintf(&b, "%d Progress\n", year)
	fmt.Fprintf(&b, "%s  %s\n", stats.Now.Format(views.DateLayout), stats.Now.Format(views.TimeLayout))
	fmt.Fprintf(&b, "%s %s\n", bar(stats.Fraction(), 30), stats.DisplayPercentage())
	fmt.Fprintf(&b, "Days Passed: %d\n", stats.DaysPassed)
	fmt.Fprintf(&b, "Days Left: %d\n", stats.DaysLeft)
	fmt.Fprintf(&b, "Time Left: %s\n", stats.Countdown())
	fmt.Fprintf(&b, "Today is the %s day of %d\n", humanize.Ordinal(int(stats.DayOfYear())), year)
	return b.String()
}

func bar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
