package views

import (
	"fmt"
	"strconv"
	"time"

	"year-progress/internal/progress"
	"year-progress/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

const (
	DateLayout = "Monday, January 2, 2006"
	TimeLayout = "03:04:05 PM"
)

// MainView renders one display session. It subscribes to session values
// through StatsChanged and ClockChanged; both only write data bindings and
// are safe to call from the session goroutines.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	header        *components.Header
	dateCard      *components.StatCard
	timeCard      *components.StatCard
	progressBar   *components.YearProgressBar
	passedCard    *components.StatCard
	leftCard      *components.StatCard
	countdownCard *components.StatCard
	footer        *widget.Label
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	title      binding.String
	date       binding.String
	clock      binding.String
	fraction   binding.Float
	percentage binding.String
	daysPassed binding.String
	daysLeft   binding.String
	countdown  binding.String
	footerText binding.String

	shareHandler       func()
	refreshHandler     func()
	themeToggleHandler func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeBindings()
	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeBindings() {
	mv.title = binding.NewString()
	mv.date = binding.NewString()
	mv.clock = binding.NewString()
	mv.fraction = binding.NewFloat()
	mv.percentage = binding.NewString()
	mv.daysPassed = binding.NewString()
	mv.daysLeft = binding.NewString()
	mv.countdown = binding.NewString()
	mv.footerText = binding.NewString()

	_ = mv.percentage.Set(progress.Stats{}.DisplayPercentage())
	_ = mv.daysPassed.Set("0")
	_ = mv.daysLeft.Set("0")
}

func (mv *MainView) initializeComponents() {
	mv.header = components.NewHeader(mv.title)
	mv.dateCard = components.NewTextCard(mv.date)
	mv.timeCard = components.NewTextCard(mv.clock)
	mv.progressBar = components.NewYearProgressBar(mv.fraction, mv.percentage)
	mv.passedCard = components.NewStatCard("Days Passed", mv.daysPassed)
	mv.leftCard = components.NewStatCard("Days Left", mv.daysLeft)
	mv.countdownCard = components.NewStatCard("Time Left", mv.countdown)
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()

	mv.footer = widget.NewLabelWithData(mv.footerText)
	mv.footer.Alignment = fyne.TextAlignCenter
	mv.footer.Importance = widget.LowImportance
}

func (mv *MainView) buildLayout() {
	body := container.NewVBox(
		mv.header.GetContainer(),
		container.NewGridWithColumns(2,
			mv.dateCard.GetContainer(),
			mv.timeCard.GetContainer(),
		),
		mv.progressBar.GetContainer(),
		container.NewGridWithColumns(2,
			mv.passedCard.GetContainer(),
			mv.leftCard.GetContainer(),
		),
		mv.countdownCard.GetContainer(),
		mv.footer,
	)

	mv.mainContainer = container.NewBorder(
		nil,
		container.NewVBox(mv.toolbar.GetContainer(), mv.statusBar.GetContainer()),
		nil,
		nil,
		container.NewPadded(body),
	)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetShareHandler(func() {
		if mv.shareHandler != nil {
			mv.shareHandler()
		}
	})

	mv.toolbar.SetRefreshHandler(func() {
		if mv.refreshHandler != nil {
			mv.refreshHandler()
		}
	})

	mv.header.SetToggleHandler(func() {
		if mv.themeToggleHandler != nil {
			mv.themeToggleHandler()
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetShareHandler(handler func()) {
	mv.shareHandler = handler
}

func (mv *MainView) SetRefreshHandler(handler func()) {
	mv.refreshHandler = handler
}

func (mv *MainView) SetThemeToggleHandler(handler func()) {
	mv.themeToggleHandler = handler
}

// StatsChanged publishes freshly computed statistics.
func (mv *MainView) StatsChanged(stats progress.Stats) {
	year := stats.Interval.Year()

	_ = mv.title.Set(fmt.Sprintf("%d Progress", year))
	_ = mv.fraction.Set(stats.Fraction())
	_ = mv.percentage.Set(stats.DisplayPercentage())
	_ = mv.daysPassed.Set(strconv.FormatInt(stats.DaysPassed, 10))
	_ = mv.daysLeft.Set(strconv.FormatInt(stats.DaysLeft, 10))
	_ = mv.countdown.Set(stats.Countdown())
	_ = mv.footerText.Set(fmt.Sprintf("Counting down every second of %d", year))
}

// ClockChanged publishes the displayed wall-clock time.
func (mv *MainView) ClockChanged(now time.Time) {
	_ = mv.date.Set(now.Format(DateLayout))
	_ = mv.clock.Set(now.Format(TimeLayout))
}

// UpdateStatus shows a non-blocking notice in the status bar.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Show attaches the view to its window.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.SetContent(mv.mainContainer)
	})
}

// SetTheme applies a theme to the view
func (mv *MainView) SetTheme(theme fyne.Theme) {
	fyne.Do(func() {
		fyne.CurrentApp().Settings().SetTheme(theme)
		mv.mainContainer.Refresh()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetHeader() *components.Header {
	return mv.header
}

// ViewState is the text currently bound into the view.
type ViewState struct {
	Title      string
	Date       string
	Time       string
	Fraction   float64
	Percentage string
	DaysPassed string
	DaysLeft   string
	Countdown  string
	Footer     string
	Status     string
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	get := func(b binding.String) string {
		v, _ := b.Get()
		return v
	}
	fraction, _ := mv.fraction.Get()

	return ViewState{
		Title:      get(mv.title),
		Date:       get(mv.date),
		Time:       get(mv.clock),
		Fraction:   fraction,
		Percentage: get(mv.percentage),
		DaysPassed: get(mv.daysPassed),
		DaysLeft:   get(mv.daysLeft),
		Countdown:  get(mv.countdown),
		Footer:     get(mv.footerText),
		Status:     mv.statusBar.GetStatus(),
	}
}
