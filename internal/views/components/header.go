package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Header shows the "<year> Progress" title and the theme toggle.
type Header struct {
	container    *fyne.Container
	title        *widget.Label
	toggleButton *widget.Button

	toggleHandler func()
}

func NewHeader(title binding.String) *Header {
	h := &Header{}

	h.title = widget.NewLabelWithData(title)
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.title.Importance = widget.HighImportance

	h.toggleButton = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		if h.toggleHandler != nil {
			h.toggleHandler()
		}
	})
	h.toggleButton.Importance = widget.LowImportance

	h.container = container.NewBorder(nil, nil, nil, h.toggleButton, h.title)
	return h
}

func (h *Header) SetToggleHandler(handler func()) {
	h.toggleHandler = handler
}

func (h *Header) ToggleButton() *widget.Button {
	return h.toggleButton
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}
