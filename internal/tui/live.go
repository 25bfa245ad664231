// Package tui is the live terminal view of a running system. It is a
// driver outside the engine core: it steps the system on a frame tick and
// reads body state only between completed steps.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/astrolab/orbsim/internal/config"
	"github.com/astrolab/orbsim/internal/metrics"
	"github.com/astrolab/orbsim/internal/sim"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives one scenario. The scenario config is kept so reset can
// rebuild the system from scratch.
type Model struct {
	cfg           *config.Config
	system        *sim.System
	stepsPerFrame int
	frameRate     int

	running bool
	err     error

	// bounding box diagonal per frame, for the extent sparkline
	history []float64
}

// NewModel builds the initial watch state for a scenario.
func NewModel(cfg *config.Config, stepsPerFrame, frameRate int) (Model, error) {
	system, err := cfg.Build()
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:           cfg,
		system:        system,
		stepsPerFrame: stepsPerFrame,
		frameRate:     frameRate,
		running:       true,
		history:       make([]float64, 0, historyCapacity),
	}, nil
}

// Run starts the bubbletea program and blocks until it exits.
func Run(cfg *config.Config, stepsPerFrame, frameRate int) error {
	m, err := NewModel(cfg, stepsPerFrame, frameRate)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance steps the engine for one frame and samples the extent.
func (m *Model) advance() {
	for i := 0; i < m.stepsPerFrame; i++ {
		if err := m.system.Step(); err != nil {
			m.err = err
			m.running = false
			return
		}
	}

	if box, ok := m.system.BoundingBox(); ok {
		diag, _ := box.Diagonal().Float64()
		m.history = append(m.history, diag)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}
}

func (m *Model) reset() {
	system, err := m.cfg.Build()
	if err != nil {
		m.err = err
		return
	}
	m.system = system
	m.err = nil
	m.history = m.history[:0]
	m.running = true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Name)) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = "FAILED"
	} else if !m.running {
		status = "PAUSED"
	}
	b.WriteString(status + "\n\n")

	b.WriteString(labelStyle.Render("Iterations") + valueStyle.Render(fmt.Sprintf("%d", m.system.IterationCount())) + "\n")
	b.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.system.Elements()))) + "\n")

	if box, ok := m.system.BoundingBox(); ok {
		diag, _ := box.Diagonal().Float64()
		b.WriteString(labelStyle.Render("Extent") + valueStyle.Render(fmt.Sprintf("%.4e", diag)) + "\n")
	}
	if com, ok := metrics.CenterOfMass(m.system.Elements()); ok {
		x, _ := com.X.Float64()
		y, _ := com.Y.Float64()
		z, _ := com.Z.Float64()
		b.WriteString(labelStyle.Render("Center of mass") + valueStyle.Render(fmt.Sprintf("(%.3e, %.3e, %.3e)", x, y, z)) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(50), asciigraph.Caption("bounding box diagonal"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	b.WriteString("\n")
	for _, body := range m.system.Elements() {
		p := body.Position()
		x, _ := p.X.Float64()
		y, _ := p.Y.Float64()
		z, _ := p.Z.Float64()
		b.WriteString(labelStyle.Render(body.Name()) + valueStyle.Render(fmt.Sprintf("(%.4e, %.4e, %.4e)", x, y, z)) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render("SP:Pause  R:Reset  Q:Quit"))
	return b.String()
}
