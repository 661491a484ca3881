package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// =============================================================================
// ProgressModel - live annealing progress display
// =============================================================================

// ProgressUpdate reports the state of one cooldown step to the TUI.
type ProgressUpdate struct {
	Pass        int
	Layer       int
	Granularity string
	Temperature float64
	Crossings   int64
	Done        bool
}

// progressMsg wraps a ProgressUpdate delivered over Updates.
type progressMsg ProgressUpdate

// ProgressModel is the bubbletea model driving the "optimize" command's
// live view of the annealing reducer.
type ProgressModel struct {
	Updates <-chan ProgressUpdate
	start   time.Time

	history   []int64
	best      int64
	haveBest  bool
	last      ProgressUpdate
	finished  bool
	maxPoints int
}

// NewProgressModel creates a progress model that reads updates from ch until
// it is closed or a ProgressUpdate with Done set arrives.
func NewProgressModel(ch <-chan ProgressUpdate) ProgressModel {
	return ProgressModel{
		Updates:   ch,
		start:     time.Now(),
		maxPoints: 40,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m ProgressModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.Updates
		if !ok {
			return progressMsg(ProgressUpdate{Done: true})
		}
		return progressMsg(u)
	}
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case progressMsg:
		u := ProgressUpdate(msg)
		if u.Done {
			m.finished = true
			return m, tea.Quit
		}
		m.last = u
		if !m.haveBest || u.Crossings < m.best {
			m.best = u.Crossings
			m.haveBest = true
		}
		m.history = append(m.history, u.Crossings)
		if len(m.history) > m.maxPoints {
			m.history = m.history[len(m.history)-m.maxPoints:]
		}
		return m, m.waitForUpdate()
	}
	return m, nil
}

func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Untangling layers"))
	b.WriteString("\n")

	elapsed := time.Since(m.start).Round(time.Millisecond)

	rows := [][]string{
		{"elapsed", elapsed.String()},
		{"pass", fmt.Sprintf("%d", m.last.Pass)},
		{"layer", fmt.Sprintf("%d", m.last.Layer)},
		{"granularity", m.last.Granularity},
		{"temperature", fmt.Sprintf("%.4f", m.last.Temperature)},
		{"crossings", fmt.Sprintf("%d", m.last.Crossings)},
		{"best", fmt.Sprintf("%d", m.best)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(sparkline(m.history))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("q to detach (optimization keeps running)"))

	return b.String()
}

// sparkline renders a coarse ASCII bar chart of recent crossing counts.
func sparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}
	const ticks = "▁▂▃▄▅▆▇█"
	var min, max int64
	min, max = values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int(float64(v-min) / float64(span) * float64(len(ticks)-1))
		}
		b.WriteRune([]rune(ticks)[idx])
	}
	return StyleDim.Render(b.String())
}
