// Package theme holds the emerald-on-slate look of the widget and the
// light/dark preference plumbing.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

var ErrInvalidMode = errors.New("invalid theme mode")

// Mode selects how the variant is chosen.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeSystem, nil
	case ModeSystem, ModeLight, ModeDark:
		return m, nil
	default:
		return ModeSystem, fmt.Errorf("%w: %q (want system, light or dark)", ErrInvalidMode, s)
	}
}

// Resolve returns the variant mode selects, asking p when mode is system.
func Resolve(mode Mode, p Provider) fyne.ThemeVariant {
	switch mode {
	case ModeLight:
		return fynetheme.VariantLight
	case ModeDark:
		return fynetheme.VariantDark
	}
	if p == nil {
		return fynetheme.VariantDark
	}
	return p.Variant()
}

// Toggled returns the forced mode opposite to the variant currently shown.
func Toggled(current fyne.ThemeVariant) Mode {
	if current == fynetheme.VariantDark {
		return ModeLight
	}
	return ModeDark
}

var (
	emerald400 = color.NRGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff}
	emerald600 = color.NRGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff}
	cyan400    = color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	gray50     = color.NRGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff}
	gray200    = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	gray400    = color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	gray700    = color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	gray800    = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	gray900    = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
)

// Accent is the secondary highlight used for the percentage text. YearTheme
// serves it as the success colour.
func Accent(v fyne.ThemeVariant) color.Color {
	if v == fynetheme.VariantLight {
		return emerald600
	}
	return cyan400
}

// YearTheme is the widget palette layered over the Fyne default theme. With
// a light or dark mode the variant requested by Fyne is ignored.
type YearTheme struct {
	mode Mode
	base fyne.Theme
}

var _ fyne.Theme = (*YearTheme)(nil)

func New(mode Mode) *YearTheme {
	return &YearTheme{mode: mode, base: fynetheme.DefaultTheme()}
}

func (t *YearTheme) Mode() Mode {
	return t.mode
}

func (t *YearTheme) variant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case ModeLight:
		return fynetheme.VariantLight
	case ModeDark:
		return fynetheme.VariantDark
	default:
		return requested
	}
}

func (t *YearTheme) Color(name fyne.ThemeColorName, requested fyne.ThemeVariant) color.Color {
	v := t.variant(requested)
	dark := v == fynetheme.VariantDark

	switch name {
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		if dark {
			return emerald400
		}
		return emerald600
	case fynetheme.ColorNameBackground:
		if dark {
			return gray900
		}
		return gray50
	case fynetheme.ColorNameButton, fynetheme.ColorNameInputBackground, fynetheme.ColorNameOverlayBackground:
		if dark {
			return gray800
		}
		return color.White
	case fynetheme.ColorNameForeground:
		if dark {
			return color.White
		}
		return gray900
	case fynetheme.ColorNameSuccess:
		return Accent(v)
	case fynetheme.ColorNamePlaceHolder, fynetheme.ColorNameDisabled:
		return gray400
	case fynetheme.ColorNameSeparator:
		if dark {
			return gray700
		}
		return gray200
	}

	return t.base.Color(name, v)
}

func (t *YearTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *YearTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *YearTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
