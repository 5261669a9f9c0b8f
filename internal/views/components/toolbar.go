package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the share and refresh actions.
type Toolbar struct {
	container     *fyne.Container
	shareButton   *widget.Button
	refreshButton *widget.Button

	shareHandler   func()
	refreshHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.shareButton = widget.NewButtonWithIcon("Share", theme.MailSendIcon(), nil)
	t.shareButton.Importance = widget.HighImportance

	t.refreshButton = widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), nil)
	t.refreshButton.Importance = widget.MediumImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		layout.NewSpacer(),
		t.shareButton,
		t.refreshButton,
		layout.NewSpacer(),
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.shareButton.OnTapped = func() {
		if t.shareHandler != nil {
			t.shareHandler()
		}
	}

	t.refreshButton.OnTapped = func() {
		if t.refreshHandler != nil {
			t.refreshHandler()
		}
	}
}

func (t *Toolbar) SetShareHandler(handler func()) {
	t.shareHandler = handler
}

func (t *Toolbar) SetRefreshHandler(handler func()) {
	t.refreshHandler = handler
}

// ShareButton is exposed for tests that tap it.
func (t *Toolbar) ShareButton() *widget.Button {
	return t.shareButton
}

func (t *Toolbar) RefreshButton() *widget.Button {
	return t.refreshButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
