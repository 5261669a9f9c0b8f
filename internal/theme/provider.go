package theme

import (
	"sync"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Provider reports the preferred light/dark variant and notifies on change.
type Provider interface {
	Variant() fyne.ThemeVariant
	Subscribe(fn func(fyne.ThemeVariant)) (unsubscribe func())
}

// Static is a Provider with a fixed variant that never changes.
type Static fyne.ThemeVariant

func (s Static) Variant() fyne.ThemeVariant { return fyne.ThemeVariant(s) }

func (Static) Subscribe(func(fyne.ThemeVariant)) func() { return func() {} }

// FyneProvider relays the OS colour-scheme preference as seen by a Fyne app.
type FyneProvider struct {
	settings fyne.Settings

	mu        sync.Mutex
	last      fyne.ThemeVariant
	listeners map[int]func(fyne.ThemeVariant)
	nextID    int
}

// NewFyneProvider reads the current variant from the app settings and starts
// relaying settings changes that alter it.
func NewFyneProvider(app fyne.App) *FyneProvider {
	settings := app.Settings()
	p := &FyneProvider{
		settings:  settings,
		last:      settings.ThemeVariant(),
		listeners: make(map[int]func(fyne.ThemeVariant)),
	}
	settings.AddListener(func(s fyne.Settings) {
		p.publish(s.ThemeVariant())
	})
	return p
}

func (p *FyneProvider) Variant() fyne.ThemeVariant {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *FyneProvider) Subscribe(fn func(fyne.ThemeVariant)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// publish notifies listeners when v differs from the last seen variant.
// Settings fire for unrelated changes too, including our own SetTheme.
func (p *FyneProvider) publish(v fyne.ThemeVariant) {
	p.mu.Lock()
	if v == p.last {
		p.mu.Unlock()
		return
	}
	p.last = v
	listeners := make([]func(fyne.ThemeVariant), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// VariantName is the lowercase name of v for logs and config.
func VariantName(v fyne.ThemeVariant) string {
	if v == fynetheme.VariantLight {
		return string(ModeLight)
	}
	return string(ModeDark)
}
