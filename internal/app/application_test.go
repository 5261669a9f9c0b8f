package app

import (
	"testing"
	"time"

	"year-progress/internal/config"
	"year-progress/internal/logger"
	"year-progress/internal/theme"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationWiresController(t *testing.T) {
	cfg := config.Config{
		Theme:  theme.ModeDark,
		Year:   2024,
		Share:  config.ShareClipboard,
		Window: config.WindowConfig{Width: 420, Height: 640},
	}

	fyneApp := test.NewApp()
	fyneApp.Settings().SetTheme(theme.New(theme.ModeDark))

	a := newApplication(fyneApp, cfg, logger.Nop{})
	a.Controller().Start()
	defer a.shutdown.Shutdown()

	view := a.Controller().View()
	require.NotNil(t, view)
	state := view.GetViewState()
	assert.Equal(t, "2024 Progress", state.Title)
	assert.Equal(t, "100.000000%", state.Percentage)
	assert.Equal(t, theme.ModeDark, a.Controller().Mode())

	a.Controller().Share()
	assert.Eventually(t, func() bool {
		return a.window.Clipboard().Content() == "Year Progress: 100.00%\nDays Passed: "+state.DaysPassed+"\nDays Left: "+state.DaysLeft
	}, time.Second, 10*time.Millisecond)
}
