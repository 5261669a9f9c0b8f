package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = ""

// StatusBar shows non-blocking notices such as share results.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.statusLabel.Alignment = fyne.TextAlignCenter
	sb.statusLabel.Importance = widget.LowImportance
	sb.container = container.NewVBox(sb.statusLabel)
	return sb
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// YearProgressBar is the bar proportional to the elapsed fraction with the
// six-decimal percentage underneath, drawn in the theme's success colour.
type YearProgressBar struct {
	container   *fyne.Container
	progressBar *widget.ProgressBar
	percentage  *widget.Label
}

func NewYearProgressBar(fraction binding.Float, percentage binding.String) *YearProgressBar {
	pb := &YearProgressBar{}

	pb.progressBar = widget.NewProgressBarWithData(fraction)
	pb.progressBar.Min = 0
	pb.progressBar.Max = 1
	pb.progressBar.TextFormatter = func() string { return "" }

	pb.percentage = widget.NewLabelWithData(percentage)
	pb.percentage.Alignment = fyne.TextAlignCenter
	pb.percentage.TextStyle = fyne.TextStyle{Bold: true}
	pb.percentage.Importance = widget.SuccessImportance

	pb.container = container.NewVBox(pb.progressBar, pb.percentage)
	return pb
}

func (pb *YearProgressBar) GetContainer() *fyne.Container {
	return pb.container
}

