package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/sim"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	panelWidth      = 40
	historyCapacity = 120

	minZoom  = 0.25
	maxZoom  = 8.0
	zoomStep = 1.25
)

type TickMsg time.Time

// Options configures the live view. Build is called at start and on every
// reset so policy state restarts together with the segments.
type Options struct {
	Title  string
	Build  func() (*sim.Simulator, error)
	Bounds lines.Bounds
	FPS    int
	Color  string
	Theme  string
	// Graph names the metric plotted in the side panel.
	Graph string
}

// Model steps a simulator once per frame and draws its segments.
type Model struct {
	opts   Options
	sim    *sim.Simulator
	tick   int
	canvas *Canvas
	theme  Theme
	styles styles
	keys   keyMap
	help   help.Model

	running bool
	err     error

	spring            harmonica.Spring
	zoom, zoomVel     float64
	zoomTarget        float64
	history           []float64
	width, height     int
	segmentForeground lipgloss.Style
}

func NewModel(opts Options) (Model, error) {
	if opts.Build == nil {
		return Model{}, fmt.Errorf("live view needs a simulator builder")
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Graph == "" {
		opts.Graph = "extent"
	}
	s, err := opts.Build()
	if err != nil {
		return Model{}, err
	}

	theme := GetTheme(opts.Theme)
	fg := lipgloss.NewStyle()
	if opts.Color != "" {
		fg = fg.Foreground(lipgloss.Color(opts.Color))
	}

	return Model{
		opts:              opts,
		sim:               s,
		canvas:            NewCanvas(defaultWidth-panelWidth, defaultHeight),
		theme:             theme,
		styles:            theme.styles(),
		keys:              defaultKeyMap(),
		help:              help.New(),
		running:           true,
		spring:            harmonica.NewSpring(harmonica.FPS(opts.FPS), 6.0, 0.9),
		zoom:              1,
		zoomTarget:        1,
		history:           make([]float64, 0, historyCapacity),
		width:             defaultWidth,
		height:            defaultHeight,
		segmentForeground: fg,
	}, nil
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = panelWidth - 4
		m.canvas.Resize(msg.Width-panelWidth-2, msg.Height-2)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.running = !m.running
		case key.Matches(msg, m.keys.Step):
			if !m.running {
				m.step()
			}
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.ZoomIn):
			m.zoomTarget = min(m.zoomTarget*zoomStep, maxZoom)
		case key.Matches(msg, m.keys.ZoomOut):
			m.zoomTarget = max(m.zoomTarget/zoomStep, minZoom)
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
			m.styles = m.theme.styles()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		m.zoom, m.zoomVel = m.spring.Update(m.zoom, m.zoomVel, m.zoomTarget)
		return m, m.frame()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Step(m.tick, m.opts.Bounds)
	m.tick++
	if !m.sim.Store().Valid() {
		m.err = sim.SimError{Tick: m.tick, Message: "non-finite coordinate"}
		m.running = false
		log.Printf("live: %v", m.err)
		return
	}
	for _, metric := range m.sim.Metrics() {
		if metric.Name() == m.opts.Graph {
			m.history = append(m.history, metric.Value())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
	}
}

func (m *Model) reset() {
	s, err := m.opts.Build()
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.sim = s
	m.tick = 0
	m.err = nil
	m.history = m.history[:0]
	m.zoomTarget = 1
}

func (m Model) View() string {
	m.canvas.Clear()
	DrawSegments(m.canvas, m.sim.Store().Segments(), NewProjection(m.opts.Bounds, m.canvas, m.zoom))
	canvasView := m.segmentForeground.Render(m.canvas.String())

	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.opts.Title)) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(st.pause.Render("ERROR") + "\n" + st.value.Render(m.err.Error()) + "\n\n")
	case m.running:
		s.WriteString(st.run.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(st.pause.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", m.tick))
	row("Segments", fmt.Sprintf("%d", m.sim.Store().Len()))
	row("Zoom", fmt.Sprintf("%.2fx", m.zoom))
	for _, metric := range m.sim.Metrics() {
		row(metric.Name(), fmt.Sprintf("%.2f", metric.Value()))
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(panelWidth-14), asciigraph.Caption(m.opts.Graph))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + m.help.View(m.keys))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// Run blocks until the user quits the live view.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
