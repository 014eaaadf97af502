// ============================================================================
// chomsky - Grammar Recognition Workbench
// ============================================================================
//
// Package:     traceview
// Description: Main Bubbletea model for the chomsky TraceView
// Author:      Mike Stoffels with Claude
// Created:     2026-07-10
// License:     MIT
// ============================================================================

package traceview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/chomsky/foundation/pda/automaton"
	"github.com/msto63/chomsky/internal/chomsky/service"
	"github.com/msto63/chomsky/pkg/core/version"
)

// KindFilter tracks which event kinds are visible
type KindFilter struct {
	Push      bool
	Select    bool
	Match     bool
	Complete  bool
	Backtrack bool
	Abandon   bool
	Skip      bool
}

func allKinds() KindFilter {
	return KindFilter{
		Push:      true,
		Select:    true,
		Match:     true,
		Complete:  true,
		Backtrack: true,
		Abandon:   true,
		Skip:      true,
	}
}

// Model is the main Bubbletea model for TraceView
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Trace state
	rec            *service.Recognition
	allEvents      []automaton.Event
	filteredEvents []automaton.Event
	kindFilter     KindFilter

	// Configuration
	svc         *service.Service
	grammarName string
	input       string
}

// Config holds TraceView configuration
type Config struct {
	Service *service.Service
	Grammar string
	Input   string
}

// New creates a new TraceView model
func New(cfg Config) Model {
	// Setup spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner:     sp,
		loading:     true,
		allEvents:   []automaton.Event{},
		kindFilter:  allKinds(),
		svc:         cfg.Service,
		grammarName: cfg.Grammar,
		input:       cfg.Input,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTrace,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case traceLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.rec = msg.rec
			m.allEvents = msg.events
			m.applyFilters()
			m.updateViewportContent()
			m.viewport.GotoTop()
		}
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Event kind filters - number keys
		case "1":
			m.kindFilter.Push = !m.kindFilter.Push
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "2":
			m.kindFilter.Select = !m.kindFilter.Select
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "3":
			m.kindFilter.Match = !m.kindFilter.Match
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "4":
			m.kindFilter.Complete = !m.kindFilter.Complete
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "5":
			m.kindFilter.Backtrack = !m.kindFilter.Backtrack
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "6":
			m.kindFilter.Abandon = !m.kindFilter.Abandon
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "7":
			m.kindFilter.Skip = !m.kindFilter.Skip
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Show all kinds
		case "0":
			m.kindFilter = allKinds()
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Re-run the recognition
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadTrace)

		// Go to top
		case "g":
			m.viewport.GotoTop()
			return m, nil

		// Go to bottom
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading TraceView..."
	}

	var b strings.Builder

	// Header with logo
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Filter bar
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	// Trace viewport
	b.WriteString(m.renderTraceArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and run outcome
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	// Outcome indicator
	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " running..."
	case m.err != nil:
		status = RejectedStyle.Render("ERROR")
	case m.rec != nil && m.rec.Result.Accepted:
		status = AcceptedStyle.Render("ACCEPTED")
	case m.rec != nil:
		status = RejectedStyle.Render("REJECTED")
	}

	grammar := NonTerminalStyle.Render(m.grammarName)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		grammar,
		strings.Repeat(" ", 3),
		status,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the event kind filter bar
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus("push", m.kindFilter.Push)),
		fmt.Sprintf("2:%s", RenderFilterStatus("select", m.kindFilter.Select)),
		fmt.Sprintf("3:%s", RenderFilterStatus("match", m.kindFilter.Match)),
		fmt.Sprintf("4:%s", RenderFilterStatus("complete", m.kindFilter.Complete)),
		fmt.Sprintf("5:%s", RenderFilterStatus("backtrack", m.kindFilter.Backtrack)),
		fmt.Sprintf("6:%s", RenderFilterStatus("abandon", m.kindFilter.Abandon)),
		fmt.Sprintf("7:%s", RenderFilterStatus("skip", m.kindFilter.Skip)),
	}

	// Count visible events
	visibleCount := len(m.filteredEvents)
	totalCount := len(m.allEvents)

	filterStr := strings.Join(filters, "  ")
	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d events]", visibleCount, totalCount))

	content := filterStr + "  " + countStr

	return FilterBarStyle.Width(m.width - 2).Render(content)
}

// renderTraceArea renders the main trace viewport
func (m Model) renderTraceArea() string {
	style := TracePanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	// Left: Run metrics
	var leftPart string
	if m.rec != nil {
		r := m.rec.Result
		leftPart = HelpDescStyle.Render(fmt.Sprintf("steps: %d  cursor: %d/%d  depth: %d",
			r.Steps, r.Cursor, r.TokenCount, r.MaxDepth))
	} else {
		leftPart = HelpDescStyle.Render("no run yet")
	}

	// Center: Version
	centerPart := HelpDescStyle.Render("v" + version.TUI)

	// Right: Outcome
	var rightPart string
	switch {
	case m.loading:
		rightPart = m.spinner.View() + " running..."
	case m.err != nil:
		rightPart = RejectedStyle.Render(m.err.Error())
	case m.rec != nil && m.rec.Result.Accepted:
		rightPart = AcceptedStyle.Render("ACCEPTED")
	case m.rec != nil && m.rec.Result.FailReason != "":
		rightPart = RejectedStyle.Render(m.rec.Result.FailReason)
	case m.rec != nil:
		rightPart = RejectedStyle.Render("REJECTED")
	}

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-7", "Kinds"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("r", "Rerun"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("PgUp/PgDn", "Page"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with filtered events
func (m *Model) updateViewportContent() {
	if m.err != nil {
		m.viewport.SetContent(RejectedStyle.Render("recognition failed: " + m.err.Error()))
		return
	}

	var content strings.Builder

	for _, ev := range m.filteredEvents {
		// Format: STEP [KIND] NONTERMINAL prod/elem cursor/depth detail
		stepStr := StepNumberStyle.Render(fmt.Sprintf("%4d", ev.Step))
		kindStr := RenderKindBadge(ev.Kind)
		ntStr := NonTerminalStyle.Render(fmt.Sprintf("%-12s", truncateString(ev.NonTerminal, 12)))
		posStr := PositionStyle.Render(fmt.Sprintf("prod %d elem %d  cursor %2d depth %2d",
			ev.Production, ev.Element, ev.Cursor, ev.Depth))

		line := fmt.Sprintf("%s %s %s %s", stepStr, kindStr, ntStr, posStr)
		if ev.Detail != "" {
			line += "  " + DetailStyle.Render(ev.Detail)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// applyFilters filters events based on current kind filter settings
func (m *Model) applyFilters() {
	m.filteredEvents = make([]automaton.Event, 0)

	for _, ev := range m.allEvents {
		switch ev.Kind {
		case automaton.EventPush:
			if !m.kindFilter.Push {
				continue
			}
		case automaton.EventSelect:
			if !m.kindFilter.Select {
				continue
			}
		case automaton.EventMatch:
			if !m.kindFilter.Match {
				continue
			}
		case automaton.EventComplete:
			if !m.kindFilter.Complete {
				continue
			}
		case automaton.EventBacktrack:
			if !m.kindFilter.Backtrack {
				continue
			}
		case automaton.EventAbandon:
			if !m.kindFilter.Abandon {
				continue
			}
		case automaton.EventSkip:
			if !m.kindFilter.Skip {
				continue
			}
		}

		m.filteredEvents = append(m.filteredEvents, ev)
	}
}

// loadTrace runs the recognition and captures its event trace
func (m Model) loadTrace() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rec, events, err := m.svc.RecognizeWithTrace(ctx, m.grammarName, m.input)
	if err != nil {
		return traceLoadedMsg{err: err}
	}

	return traceLoadedMsg{rec: rec, events: events}
}

// truncateString truncates a string to max length
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// Run starts the TraceView TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
