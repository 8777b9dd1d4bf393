// Package viz renders a live terminal view of a running simulation.
package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lagsim/internal/integrator"
	"github.com/san-kum/lagsim/internal/metrics"
)

const (
	historyCapacity = 600
	stepsPerTick    = 5
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type TickMsg time.Time

// Model steps the integrator between frames and plots the mean particle
// speed over time.
type Model struct {
	in      *integrator.Integrator
	ev      integrator.Evaluator
	scheme  string
	t, dt   float64
	steps   int
	running bool
	err     error
	speed   []float64
}

func NewModel(in *integrator.Integrator, ev integrator.Evaluator, scheme string, dt float64) Model {
	return Model{
		in:      in,
		ev:      ev,
		scheme:  scheme,
		dt:      dt,
		running: true,
		speed:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}

	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerTick; i++ {
				if err := m.in.StepOnce(context.Background(), m.ev, m.t, m.dt); err != nil {
					m.err = err
					break
				}
				m.t += m.dt
				m.steps++
			}
			m.speed = append(m.speed, m.meanSpeed())
			if len(m.speed) > historyCapacity {
				m.speed = m.speed[len(m.speed)-historyCapacity:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("lagsim — %s", m.scheme)))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"particles", fmt.Sprintf("%d", m.in.Group().Len())},
		{"stages", fmt.Sprintf("%d", m.Stages())},
		{"time", fmt.Sprintf("%.4f", m.t)},
		{"dt", fmt.Sprintf("%.2e", m.dt)},
		{"steps", fmt.Sprintf("%d", m.steps)},
		{"mean speed", fmt.Sprintf("%.4f", m.meanSpeed())},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if len(m.speed) > 1 {
		plot := asciigraph.Plot(m.speed,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("mean particle speed"),
		)
		b.WriteString(graphStyle.Render(plot))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · q quit"))
	return b.String()
}

func (m Model) Stages() int { return m.in.Stages() }

func (m Model) meanSpeed() float64 {
	return metrics.MeanSpeed(m.in.Group())
}

// Run blocks in the live view until the user quits.
func Run(in *integrator.Integrator, ev integrator.Evaluator, scheme string, dt float64) error {
	p := tea.NewProgram(NewModel(in, ev, scheme, dt))
	_, err := p.Run()
	return err
}
