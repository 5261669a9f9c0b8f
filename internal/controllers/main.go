package controllers

import (
	"context"
	"sync"
	"time"

	"year-progress/internal/logger"
	"year-progress/internal/session"
	"year-progress/internal/share"
	"year-progress/internal/theme"
	"year-progress/internal/views"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

const shareTimeout = 10 * time.Second

// SessionFactory builds a fresh, unstarted session.
type SessionFactory func() *session.Session

// Options wires a MainController.
type Options struct {
	Window     fyne.Window
	Logger     logger.Logger
	NewSession SessionFactory
	Share      *share.Service
	Theme      theme.Provider
	Mode       theme.Mode
}

// MainController owns the display context: one view bound to one session.
// Refresh throws both away and builds them again from scratch.
type MainController struct {
	window     fyne.Window
	logger     logger.Logger
	newSession SessionFactory
	share      *share.Service
	provider   theme.Provider

	mu               sync.Mutex
	mode             theme.Mode
	view             *views.MainView
	session          *session.Session
	unsubscribe      func()
	unsubscribeTheme func()
	mounts           int
}

func NewMainController(opts Options) *MainController {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	if opts.NewSession == nil {
		opts.NewSession = func() *session.Session {
			return session.New(session.Options{Logger: opts.Logger})
		}
	}
	if opts.Theme == nil {
		opts.Theme = theme.Static(fynetheme.VariantDark)
	}
	if opts.Mode == "" {
		opts.Mode = theme.ModeSystem
	}

	return &MainController{
		window:     opts.Window,
		logger:     opts.Logger,
		newSession: opts.NewSession,
		share:      opts.Share,
		provider:   opts.Theme,
		mode:       opts.Mode,
	}
}

// Start builds the first display context, applies the theme and follows
// OS colour-scheme changes until Shutdown.
func (mc *MainController) Start() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.mountLocked()
	mc.view.SetTheme(theme.New(mc.mode))

	mc.unsubscribeTheme = mc.provider.Subscribe(mc.onSystemVariant)
	mc.window.SetOnClosed(mc.Shutdown)
}

// Share sends the summary of the latest statistics and reports the result
// in the status bar. Failures never touch the running session.
func (mc *MainController) Share() {
	mc.mu.Lock()
	view, sess := mc.view, mc.session
	mc.mu.Unlock()

	if view == nil || sess == nil {
		return
	}
	if mc.share == nil {
		view.UpdateStatus(share.Notice(share.OutcomeNone, share.ErrUnavailable))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
	defer cancel()

	outcome, err := mc.share.Share(ctx, sess.Snapshot())
	view.UpdateStatus(share.Notice(outcome, err))
}

// Refresh tears down the current view and session and mounts new ones.
func (mc *MainController) Refresh() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.logger.Info("MainController", "refreshing display context", map[string]interface{}{
		"mounts": mc.mounts,
	})
	mc.unmountLocked()
	mc.mountLocked()
}

// ToggleTheme flips between forced light and dark.
func (mc *MainController) ToggleTheme() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.mode = theme.Toggled(theme.Resolve(mc.mode, mc.provider))
	mc.logger.Debug("MainController", "theme toggled", map[string]interface{}{
		"mode": string(mc.mode),
	})
	if mc.view != nil {
		mc.view.SetTheme(theme.New(mc.mode))
	}
}

// Shutdown stops the session. It is safe to call more than once.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.unsubscribeTheme != nil {
		mc.unsubscribeTheme()
		mc.unsubscribeTheme = nil
	}
	mc.unmountLocked()
}

func (mc *MainController) Mode() theme.Mode {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.mode
}

func (mc *MainController) View() *views.MainView {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.view
}

func (mc *MainController) Session() *session.Session {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.session
}

func (mc *MainController) mountLocked() {
	view := views.NewMainView(mc.window)
	view.SetShareHandler(mc.Share)
	view.SetRefreshHandler(mc.Refresh)
	view.SetThemeToggleHandler(mc.ToggleTheme)

	sess := mc.newSession()
	mc.unsubscribe = sess.Subscribe(view)
	sess.Start()

	mc.view = view
	mc.session = sess
	mc.mounts++

	view.Show()
}

func (mc *MainController) unmountLocked() {
	if mc.session == nil {
		return
	}

	mc.session.Close()
	if mc.unsubscribe != nil {
		mc.unsubscribe()
		mc.unsubscribe = nil
	}
	mc.session = nil
	mc.view = nil
}

func (mc *MainController) onSystemVariant(v fyne.ThemeVariant) {
	mc.logger.Info("MainController", "system colour scheme changed", map[string]interface{}{
		"variant": theme.VariantName(v),
	})

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.mode == theme.ModeSystem && mc.view != nil {
		mc.view.SetTheme(theme.New(mc.mode))
	}
}
