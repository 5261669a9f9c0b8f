// Package share packages the year statistics as text and hands it to a
// platform share facility, falling back to the clipboard.
package share

import (
	"context"
	"errors"
	"fmt"

	"year-progress/internal/logger"
	"year-progress/internal/progress"
)

var (
	// ErrUnavailable reports that no share facility exists on this platform.
	ErrUnavailable = errors.New("share facility unavailable")
	// ErrCancelled reports that the user dismissed the share facility.
	ErrCancelled = errors.New("share cancelled")
)

// Outcome tells the caller which channel delivered the summary.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeShared
	OutcomeCopied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShared:
		return "shared"
	case OutcomeCopied:
		return "copied"
	default:
		return "none"
	}
}

// Sharer is a platform share facility.
type Sharer interface {
	Share(ctx context.Context, title, text string) error
}

// Clipboard receives text when no share facility is available.
type Clipboard interface {
	WriteText(text string) error
}

const Title = "Year Progress"

// Summary renders the shareable text. The percentage is rounded to two
// decimals here, unlike the six used on screen.
func Summary(stats progress.Stats) string {
	return fmt.Sprintf("Year Progress: %.2f%%\nDays Passed: %d\nDays Left: %d",
		stats.Percentage, stats.DaysPassed, stats.DaysLeft)
}

// Service shares summaries. A nil Sharer goes straight to the clipboard.
type Service struct {
	sharer    Sharer
	clipboard Clipboard
	logger    logger.Logger
}

func NewService(sharer Sharer, clipboard Clipboard, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop{}
	}
	return &Service{sharer: sharer, clipboard: clipboard, logger: log}
}

// Share delivers the summary of stats. When the share facility is missing
// or reports ErrUnavailable the text is copied to the clipboard instead.
func (s *Service) Share(ctx context.Context, stats progress.Stats) (Outcome, error) {
	text := Summary(stats)

	if s.sharer != nil {
		err := s.sharer.Share(ctx, Title, text)
		switch {
		case err == nil:
			s.logger.Info("Share", "summary shared", nil)
			return OutcomeShared, nil
		case errors.Is(err, ErrCancelled):
			s.logger.Debug("Share", "share cancelled by user", nil)
			return OutcomeNone, err
		case !errors.Is(err, ErrUnavailable):
			s.logger.Error("Share", err, map[string]interface{}{"stage": "share"})
			return OutcomeNone, fmt.Errorf("share summary: %w", err)
		}
		s.logger.Debug("Share", "share facility unavailable, using clipboard", nil)
	}

	if s.clipboard == nil {
		return OutcomeNone, ErrUnavailable
	}
	if err := s.clipboard.WriteText(text); err != nil {
		s.logger.Error("Share", err, map[string]interface{}{"stage": "clipboard"})
		return OutcomeNone, fmt.Errorf("copy summary to clipboard: %w", err)
	}

	s.logger.Info("Share", "summary copied to clipboard", nil)
	return OutcomeCopied, nil
}

// Notice is the user-facing status text for a share attempt.
func Notice(outcome Outcome, err error) string {
	switch {
	case errors.Is(err, ErrCancelled):
		return "Share cancelled"
	case err != nil:
		return fmt.Sprintf("Could not share: %v", err)
	case outcome == OutcomeCopied:
		return "Copied to clipboard!"
	case outcome == OutcomeShared:
		return "Shared"
	default:
		return ""
	}
}
