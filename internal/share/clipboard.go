package share

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"
)

// FyneClipboard writes to the clipboard of a Fyne window.
type FyneClipboard struct {
	Clipboard fyne.Clipboard
}

func (c FyneClipboard) WriteText(text string) error {
	if c.Clipboard == nil {
		return errors.New("no clipboard attached to window")
	}
	c.Clipboard.SetContent(text)
	return nil
}

// SystemClipboard writes to the OS clipboard without a window, for the
// terminal front-ends.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	return clipboard.WriteAll(text)
}
