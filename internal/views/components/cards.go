package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// StatCard is a caption over a bound value.
type StatCard struct {
	container *fyne.Container
	caption   *widget.Label
	value     *widget.Label
}

func NewStatCard(caption string, value binding.String) *StatCard {
	c := &StatCard{
		caption: widget.NewLabel(caption),
		value:   widget.NewLabelWithData(value),
	}
	c.caption.Importance = widget.LowImportance
	c.value.TextStyle = fyne.TextStyle{Bold: true}

	c.container = container.NewVBox(c.caption, c.value)
	return c
}

// NewTextCard is a StatCard without a caption, used for the date and time.
func NewTextCard(value binding.String) *StatCard {
	c := &StatCard{value: widget.NewLabelWithData(value)}
	c.value.Alignment = fyne.TextAlignCenter
	c.container = container.NewVBox(c.value)
	return c
}

func (c *StatCard) GetContainer() *fyne.Container {
	return c.container
}
