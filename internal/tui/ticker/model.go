// Package ticker implements the live age display.
//
// The model runs a cooperative single-threaded loop: every tick it samples
// the clock, recomputes the elapsed breakdown, and re-renders; a quit key
// observed between ticks stops the loop. Wall-clock jumps are accepted as-is.
package ticker

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/agetick/agetick/internal/tui/glyph"
	"github.com/agetick/agetick/pkg/calendar"
)

const (
	contentMargin = 2 // left margin, matches the header indent
	fieldGap      = 4 // columns between adjacent field blocks
)

var (
	headerStyle = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "86"})
)

type tickMsg time.Time

// Model is the bubbletea model of the age ticker.
type Model struct {
	birth      time.Time
	interval   time.Duration
	showMillis bool
	renderer   glyph.Renderer

	// now is the clock source, injectable for tests.
	now func() time.Time

	help    help.Model
	width   int
	height  int
	last    calendar.Breakdown
	stopped bool
}

// New creates a ticker model for the given birth instant.
func New(birth time.Time, interval time.Duration, showMillis bool, renderer glyph.Renderer) *Model {
	return &Model{
		birth:      birth,
		interval:   interval,
		showMillis: showMillis,
		renderer:   renderer,
		now:        time.Now,
		help:       help.New(),
	}
}

// WithClock replaces the clock source. Used by tests.
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	return m
}

// Stopped reports whether the quit signal was observed.
func (m *Model) Stopped() bool {
	return m.stopped
}

// Breakdown returns the last computed elapsed breakdown.
func (m *Model) Breakdown() calendar.Breakdown {
	return m.last
}

func (m *Model) Init() tea.Cmd {
	m.last = calendar.Elapsed(m.birth, m.now())
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.stopped {
			return m, nil
		}
		m.last = calendar.Elapsed(m.birth, m.now())
		return m, m.tick()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.stopped = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) View() string {
	if m.stopped {
		return ""
	}

	header := headerStyle.Render("Age ticker")
	body := m.renderBands(m.contentWidth())

	view := lipgloss.JoinVertical(lipgloss.Left,
		"",
		" "+header,
		"",
		body,
		"",
		" "+m.help.View(keys),
	)

	// Hard-clip to the terminal; a narrow or resized window drops content
	// instead of failing.
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	if m.height > 0 {
		lines := strings.Split(view, "\n")
		if len(lines) > m.height {
			view = strings.Join(lines[:m.height], "\n")
		}
	}
	return view
}

// Snapshot returns a plain, unstyled rendering of the last breakdown for
// printing after the interactive surface closes.
func (m *Model) Snapshot() string {
	blocks := lo.Map(m.last.Fields(m.showMillis), func(f calendar.Field, _ int) string {
		return m.fieldBlock(f, nil)
	})

	var sb strings.Builder
	sb.WriteString("Age ticker (final snapshot)\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(blocks)...))
	sb.WriteString("\n")
	return sb.String()
}

// renderBands lays the field blocks out left to right, wrapping to a new band
// when the next block would exceed the available width.
func (m *Model) renderBands(maxWidth int) string {
	fields := m.last.Fields(m.showMillis)

	var bands []string
	var band []string
	used := 0

	for _, f := range fields {
		block := m.fieldBlock(f, &digitStyle)
		w := lipgloss.Width(block) + fieldGap

		if len(band) > 0 && maxWidth > 0 && used+w > maxWidth {
			bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(band)...))
			band = nil
			used = 0
		}
		band = append(band, block)
		used += w
	}
	if len(band) > 0 {
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(band)...))
	}

	indented := lo.Map(bands, func(b string, _ int) string {
		return lipgloss.NewStyle().MarginLeft(contentMargin).Render(b)
	})
	return strings.Join(indented, "\n\n")
}

// fieldBlock renders one field as its centered label above the big digits.
func (m *Model) fieldBlock(f calendar.Field, style *lipgloss.Style) string {
	rows := m.renderer.Render(f.Value)
	digits := strings.Join(rows, "\n")

	label := f.Label
	if style != nil {
		digits = style.Render(digits)
		label = labelStyle.Render(label)
	}

	return lipgloss.JoinVertical(lipgloss.Center, label, digits)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0 // unknown geometry: no wrapping
	}
	return m.width - contentMargin
}

// joinWithGap interleaves fixed-width spacers between blocks.
func joinWithGap(blocks []string) []string {
	gap := strings.Repeat(" ", fieldGap)
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, b)
	}
	return out
}
