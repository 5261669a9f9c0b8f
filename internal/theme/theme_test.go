package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeSystem, "system": ModeSystem, "Dark": ModeDark, " light ": ModeLight} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestForcedModeIgnoresRequestedVariant(t *testing.T) {
	dark := New(ModeDark)
	light := New(ModeLight)

	assert.Equal(t, gray900, dark.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
	assert.Equal(t, gray50, light.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	assert.Equal(t, emerald400, dark.Color(fynetheme.ColorNamePrimary, fynetheme.VariantLight))
}

func TestSystemModeFollowsRequestedVariant(t *testing.T) {
	th := New(ModeSystem)

	assert.Equal(t, gray900, th.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	assert.Equal(t, gray50, th.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
	assert.Equal(t, color.Color(color.White), th.Color(fynetheme.ColorNameForeground, fynetheme.VariantDark))
}

func TestUnstyledNamesDelegateToDefault(t *testing.T) {
	test.NewApp()
	th := New(ModeDark)
	base := fynetheme.DefaultTheme()

	assert.Equal(t, base.Color(fynetheme.ColorNameError, fynetheme.VariantDark),
		th.Color(fynetheme.ColorNameError, fynetheme.VariantLight))
	assert.Equal(t, base.Size(fynetheme.SizeNamePadding), th.Size(fynetheme.SizeNamePadding))
	assert.NotNil(t, th.Icon(fynetheme.IconNameMailSend))
	assert.NotNil(t, th.Font(fyne.TextStyle{Monospace: true}))
}

func TestResolveAndToggle(t *testing.T) {
	system := Static(fynetheme.VariantLight)

	assert.Equal(t, fynetheme.VariantLight, Resolve(ModeSystem, system))
	assert.Equal(t, fynetheme.VariantDark, Resolve(ModeDark, system))
	assert.Equal(t, fynetheme.VariantLight, Resolve(ModeLight, Static(fynetheme.VariantDark)))
	assert.Equal(t, fynetheme.VariantDark, Resolve(ModeSystem, nil))

	assert.Equal(t, ModeLight, Toggled(fynetheme.VariantDark))
	assert.Equal(t, ModeDark, Toggled(fynetheme.VariantLight))
	assert.Equal(t, "light", VariantName(fynetheme.VariantLight))
}

func TestAccentIsTheSuccessColour(t *testing.T) {
	assert.Equal(t, cyan400, Accent(fynetheme.VariantDark))
	assert.Equal(t, emerald600, Accent(fynetheme.VariantLight))

	assert.Equal(t, cyan400, New(ModeDark).Color(fynetheme.ColorNameSuccess, fynetheme.VariantLight))
	assert.Equal(t, emerald600, New(ModeSystem).Color(fynetheme.ColorNameSuccess, fynetheme.VariantLight))
}

func TestFyneProviderRelaysChanges(t *testing.T) {
	p := &FyneProvider{last: fynetheme.VariantDark, listeners: make(map[int]func(fyne.ThemeVariant))}

	var got []fyne.ThemeVariant
	unsubscribe := p.Subscribe(func(v fyne.ThemeVariant) { got = append(got, v) })

	p.publish(fynetheme.VariantDark)
	p.publish(fynetheme.VariantLight)
	p.publish(fynetheme.VariantLight)
	assert.Equal(t, []fyne.ThemeVariant{fynetheme.VariantLight}, got)
	assert.Equal(t, fynetheme.VariantLight, p.Variant())

	unsubscribe()
	p.publish(fynetheme.VariantDark)
	assert.Len(t, got, 1)
}

func TestStaticSubscribeIsNoop(t *testing.T) {
	s := Static(fynetheme.VariantDark)
	unsubscribe := s.Subscribe(func(fyne.ThemeVariant) { t.Fatal("static provider notified") })
	assert.NotPanics(t, unsubscribe)
	assert.Equal(t, fynetheme.VariantDark, s.Variant())
}
