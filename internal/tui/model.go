// Package tui runs the chart as an interactive terminal program. The
// bubbletea loop is the document's display loop: periodic callbacks arrive
// as [document.PeriodicMsg] and every update returns the document's queued
// ticks.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/gapminder"
	"github.com/san-kum/gapminder/internal/logging"
	"github.com/san-kum/gapminder/internal/render"
	"github.com/san-kum/gapminder/internal/viz"
)

// Option configures a Model.
type Option func(*Model)

// WithTheme selects the starting theme by name.
func WithTheme(name string) Option {
	return func(m *Model) { m.theme = viz.GetTheme(name) }
}

// WithAutoplay starts the animation as soon as the program starts.
func WithAutoplay(on bool) Option {
	return func(m *Model) { m.autoplay = on }
}

// WithLogger sets the model's logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) { m.log = l.WithComponent("tui") }
}

// Model is the bubbletea model of a mounted chart.
type Model struct {
	session *gapminder.Session
	doc     *document.Document
	keys    keyMap
	help    help.Model
	theme   viz.Theme
	log     *logging.Logger

	autoplay bool
	mouse    bool // hover follows the mouse
	mouseCol int
	mouseRow int
	selected int // keyboard-selected marker, -1 for none

	width, height int
}

// New wraps a mounted session.
func New(s *gapminder.Session, opts ...Option) Model {
	m := Model{
		session:  s,
		doc:      s.Doc,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    viz.Themes[0],
		log:      logging.Nop(),
		selected: -1,
		width:    120,
		height:   40,
	}
	for _, opt := range opts {
		opt(&m)
	}
	s.Plot.SetTheme(m.theme)
	return m
}

// Run starts the interactive program and blocks until it quits.
func Run(s *gapminder.Session, opts ...Option) error {
	p := tea.NewProgram(New(s, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	if s.Controller.Playing() {
		s.Controller.Pause()
	}
	return err
}

func (m Model) Init() tea.Cmd {
	if m.autoplay {
		m.session.Controller.Play()
	}
	return m.doc.Cmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case document.PeriodicMsg:
		m.doc.Handle(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.log.Info("quit", "year", m.session.Controller.Slider.Value)
			m.session.Controller.Pause()
			return m, tea.Quit
		}
		m = m.handleKey(msg)
	}
	return m, m.doc.Cmd()
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	ctrl := m.session.Controller
	switch {
	case key.Matches(msg, m.keys.Play):
		ctrl.Button.Click()
	case key.Matches(msg, m.keys.Left):
		ctrl.Drag(-1)
	case key.Matches(msg, m.keys.Right):
		ctrl.Drag(1)
	case key.Matches(msg, m.keys.Home):
		ctrl.Seek(ctrl.Slider.Start)
	case key.Matches(msg, m.keys.End):
		ctrl.Seek(ctrl.Slider.End)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Theme):
		m.theme = viz.NextTheme(m.theme)
		m.session.Plot.SetTheme(m.theme)
		m.log.Debug("theme changed", "theme", m.theme.Name)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m
}

func (m *Model) cycle(dir int) {
	n := len(m.session.Plot.Markers())
	m.mouse = false
	if n == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		if dir > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
		return
	}
	m.selected = ((m.selected+dir)%n + n) % n
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion {
		return
	}
	ox, oy := m.session.Plot.CanvasOrigin()
	m.mouse = true
	m.mouseCol, m.mouseRow = msg.X-ox, msg.Y-oy
}

// Tooltip returns the hovered marker's tooltip, from the mouse or the
// keyboard selection, against the frame currently drawn.
func (m Model) Tooltip() (render.Tooltip, bool) {
	plot := m.session.Plot
	if m.mouse {
		return plot.Hover(m.mouseCol, m.mouseRow)
	}
	markers := plot.Markers()
	if m.selected < 0 || len(markers) == 0 {
		return render.Tooltip{}, false
	}
	return plot.TooltipFor(markers[m.selected%len(markers)]), true
}

// Theme returns the active theme.
func (m Model) Theme() viz.Theme {
	return m.theme
}

func (m Model) View() string {
	root := m.doc.Root()
	if root == nil {
		return ""
	}
	view := lipgloss.JoinHorizontal(lipgloss.Top, root.Render(), m.sidebar())
	if tip, ok := m.Tooltip(); ok {
		view += "\n" + tip.Render()
	}
	return view + "\n" + m.help.View(m.keys)
}
