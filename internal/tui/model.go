// Package tui renders the year progress in a terminal with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"year-progress/internal/logger"
	"year-progress/internal/progress"
	"year-progress/internal/session"
	"year-progress/internal/share"
	"year-progress/internal/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	defaultBarWidth = 40
	shareTimeout    = 10 * time.Second
)

type statsMsg progress.Stats

type clockMsg time.Time

type shareResultMsg struct {
	outcome share.Outcome
	err     error
}

type mountedMsg struct{}

// Options configures a Model.
type Options struct {
	NewSession func() *session.Session
	Share      *share.Service
	Dark       bool
	Logger     logger.Logger
}

// Model is the Bubble Tea model. It is used by pointer so the session
// observer and the program share one sender.
type Model struct {
	newSession func() *session.Session
	share      *share.Service
	logger     logger.Logger

	mu          sync.Mutex
	send        func(tea.Msg)
	session     *session.Session
	unsubscribe func()

	stats  progress.Stats
	now    time.Time
	dark   bool
	status string

	bar    bar.Model
	help   help.Model
	keys   keyMap
	styles styles
}

func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	if opts.NewSession == nil {
		opts.NewSession = func() *session.Session {
			return session.New(session.Options{Logger: opts.Logger})
		}
	}

	m := &Model{
		newSession: opts.NewSession,
		share:      opts.Share,
		logger:     opts.Logger,
		dark:       opts.Dark,
		bar:        bar.New(bar.WithGradient(emerald400, cyan400), bar.WithoutPercentage()),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.bar.Width = defaultBarWidth
	m.styles = newStyles(m.dark)
	return m
}

// SetSender connects the model to a running program; typically
// program.Send.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.send = send
}

func (m *Model) Init() tea.Cmd {
	return m.mount
}

// mount starts a new session whose observers forward into the program. It
// runs as a command because the first values are sent synchronously.
func (m *Model) mount() tea.Msg {
	m.mu.Lock()
	defer m.mu.Unlock()

	send := m.send
	if send == nil {
		send = func(tea.Msg) {}
	}

	sess := m.newSession()
	m.unsubscribe = sess.Subscribe(session.Funcs{
		OnStats: func(s progress.Stats) { send(statsMsg(s)) },
		OnClock: func(now time.Time) { send(clockMsg(now)) },
	})
	sess.Start()
	m.session = sess
	return mountedMsg{}
}

// unmount stops the current session. It must not run on the program's event
// loop since the session's tasks may be waiting for it to accept a message.
func (m *Model) unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return
	}
	m.session.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.session = nil
}

func (m *Model) refresh() tea.Msg {
	m.logger.Info("TUI", "refreshing session", nil)
	m.unmount()
	return m.mount()
}

// Close stops the session. Call it after the program has exited.
func (m *Model) Close() {
	m.unmount()
}

func (m *Model) shareCmd(stats progress.Stats) tea.Cmd {
	svc := m.share
	return func() tea.Msg {
		if svc == nil {
			return shareResultMsg{err: share.ErrUnavailable}
		}
		ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
		defer cancel()

		outcome, err := svc.Share(ctx, stats)
		return shareResultMsg{outcome: outcome, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.stats = progress.Stats(msg)
	case clockMsg:
		m.now = time.Time(msg)
	case shareResultMsg:
		m.status = share.Notice(msg.outcome, msg.err)
	case mountedMsg:
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-8, 80))
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Share):
			return m, m.shareCmd(m.stats)
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			return m, m.refresh
		case key.Matches(msg, m.keys.Theme):
			m.dark = !m.dark
			m.styles = newStyles(m.dark)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	s := m.styles
	year := m.stats.Interval.Year()

	var b strings.Builder
	b.WriteString(s.title.Render(fmt.Sprintf("%d Progress", year)))
	b.WriteString("\n\n")
	b.WriteString(s.muted.Render(m.now.Format(views.DateLayout)))
	b.WriteString("   ")
	b.WriteString(s.muted.Render(m.now.Format(views.TimeLayout)))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.stats.Fraction()))
	b.WriteString("\n")
	b.WriteString(s.percentage.Render(m.stats.DisplayPercentage()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.muted.Render("Days Passed ")+s.value.Render(fmt.Sprint(m.stats.DaysPassed)),
		"    ",
		s.muted.Render("Days Left ")+s.value.Render(fmt.Sprint(m.stats.DaysLeft)),
	))
	b.WriteString("\n")
	b.WriteString(s.muted.Render("Time Left ") + s.value.Render(m.stats.Countdown()))
	b.WriteString("\n\n")
	b.WriteString(s.muted.Render(fmt.Sprintf("Counting down every second of %d · %s day",
		year, humanize.Ordinal(int(m.stats.DayOfYear())))))

	out := s.box.Render(b.String()) + "\n"
	if m.status != "" {
		out += s.status.Render(m.status) + "\n"
	}
	return out + m.help.View(m.keys) + "\n"
}

// Dark reports whether the dark palette is active.
func (m *Model) Dark() bool {
	return m.dark
}

// Status returns the last share notice.
func (m *Model) Status() string {
	return m.status
}
