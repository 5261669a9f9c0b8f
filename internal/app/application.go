package app

import (
	"context"

	"year-progress/internal/config"
	"year-progress/internal/controllers"
	"year-progress/internal/logger"
	"year-progress/internal/progress"
	"year-progress/internal/session"
	"year-progress/internal/share"
	"year-progress/internal/shutdown"
	"year-progress/internal/theme"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Year Progress"
	AppID      = "com.yearprogress.widget"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	controller *controllers.MainController
	shutdown   *shutdown.Manager
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"theme":        string(cfg.Theme),
		"year":         cfg.Year,
		"share_method": string(cfg.Share),
	})

	var sharer share.Sharer
	if cfg.Share == config.ShareAuto {
		sharer = share.MailSharer{Opener: fyneApp}
	}
	shareService := share.NewService(sharer, share.FyneClipboard{Clipboard: window.Clipboard()}, log)

	policy := progress.PolicyFor(cfg.Year)
	controller := controllers.NewMainController(controllers.Options{
		Window: window,
		Logger: log,
		NewSession: func() *session.Session {
			return session.New(session.Options{Policy: policy, Logger: log})
		},
		Share: shareService,
		Theme: theme.NewFyneProvider(fyneApp),
		Mode:  cfg.Theme,
	})

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("controller", controller)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		shutdown:   shutdownManager,
	}
}

// Run shows the window and blocks until it is closed, a signal arrives or
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	a.controller.Start()
	a.shutdown.Listen(a.quit)

	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "context cancelled, initiating shutdown", nil)
			a.shutdown.Shutdown()
			a.quit()
		case <-a.shutdown.Done():
		}
	}()

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func (a *Application) quit() {
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
