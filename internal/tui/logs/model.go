// Package logs implements the interactive Bubble Tea controller: it
// drains a source.Event channel, feeds lines through logcore.State and
// internal/highlight, and renders the currently visible window through a
// viewport.Terminal.
package logs

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bsisduck/octolog/internal/clipboard"
	"github.com/bsisduck/octolog/internal/filterlang"
	"github.com/bsisduck/octolog/internal/highlight"
	"github.com/bsisduck/octolog/internal/logcore"
	"github.com/bsisduck/octolog/internal/query"
	"github.com/bsisduck/octolog/internal/source"
	"github.com/bsisduck/octolog/internal/throttle"
	"github.com/bsisduck/octolog/internal/tui/common"
	"github.com/bsisduck/octolog/internal/ui/format"
	"github.com/bsisduck/octolog/internal/ui/styles"
	"github.com/bsisduck/octolog/internal/viewport"
)

// inputField identifies which query input, if any, currently has
// keyboard focus.
type inputField int

const (
	inputNone inputField = iota
	inputHide
	inputFilter
	inputHighlight
)

// sourceStartFunc starts ingestion, wiring events into sink. It matches
// the shared signature of source.StartFileTail, source.StartStdin, and
// source.StartTCPListener with their other arguments already bound.
type sourceStartFunc func(sink source.Sink) error

// Messages for async operations. Startup and query-save failures use the
// shared common.ErrMsg/common.WarnMsg envelopes; everything specific to
// this controller gets its own message type.
type sourceEventMsg struct{ event source.Event }
type flushTickMsg struct{ gen uint64 }
type exportDoneMsg struct {
	path  string
	count int
	err   error
}
type clearStatusMsg struct{}

// Model is the Bubble Tea model for the log viewer: source ingestion,
// query state, and a terminal viewport over the filtered buffer.
type Model struct {
	label     string // header text: file path, "stdin", or "tcp :PORT"
	start     sourceStartFunc
	events    chan source.Event
	lineStart *regexp.Regexp

	state    *logcore.State
	termView *viewport.Terminal

	width, height int

	editing        inputField
	editBuf        string
	hideInput      string
	filterInput    string
	highlightInput string
	fieldErr       string // compile error against the currently edited field

	coalescer *throttle.Coalescer
	flushGen  uint64

	isConnected bool
	peer        string

	statusMessage string
	statusIsError bool
	startupErr    error

	quitting bool
}

// New creates a log viewer model. lineStart is the compiled multi-line
// aggregation regex already bound into start's closure (nil disables
// aggregation); it is kept here only so the query file can be rewritten
// with the same setting.
func New(label string, lineStart *regexp.Regexp, start sourceStartFunc) Model {
	m := Model{
		label:     label,
		start:     start,
		events:    make(chan source.Event, 256),
		lineStart: lineStart,
		state:     logcore.NewState(),
		termView:  viewport.NewTerminal(20),
		coalescer: throttle.New(),
	}

	q := query.Load()
	m.hideInput = q.HideInput
	m.filterInput = q.FilterInput
	m.highlightInput = q.HighlightInput

	if m.hideInput != "" {
		if re, err := regexp.Compile(m.hideInput); err == nil {
			m.state.Filter.HideRegex = re
		}
	}
	if m.filterInput != "" {
		if expr, err := filterlang.Parse(m.filterInput); err == nil {
			m.state.Filter.FilterExpr = expr
		}
	}
	if m.highlightInput != "" {
		if expr, err := filterlang.Parse(m.highlightInput); err == nil {
			m.state.Filter.HighlightExpr = expr
		}
	}
	m.state.RebuildFilteredIndices()
	m.state.ScrollToEnd()

	return m
}

// Init starts the source worker and begins draining its event channel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSourceCmd(), m.waitForEventCmd())
}

// startSourceCmd launches ingestion and reports a startup failure as a
// common.ErrMsg, the shared async-error envelope also used by
// saveQueryCmd's non-fatal counterpart.
func (m Model) startSourceCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.start(m.events); err != nil {
			return common.ErrMsg{Err: err}
		}
		return nil
	}
}

func (m Model) waitForEventCmd() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return sourceEventMsg{event: ev}
	}
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) addSystemLine(text string) {
	m.state.AddLine(text, false)
}

// Update handles messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.termView.SetHeight(m.viewportHeight())
		return m, nil

	case common.ErrMsg:
		m.startupErr = msg.Err
		return m, tea.Quit

	case common.WarnMsg:
		if len(msg.Warnings) == 0 {
			return m, nil
		}
		return m, m.setStatus(strings.Join(msg.Warnings, "; "), true)

	case sourceEventMsg:
		wasAtBottom := m.state.FollowTail()
		cmd := m.handleSourceEvent(msg.event)
		if wasAtBottom && m.state.FollowTail() {
			m.state.ScrollToEnd()
		}
		return m, tea.Batch(cmd, m.waitForEventCmd())

	case flushTickMsg:
		if msg.gen != m.flushGen {
			return m, nil // a newer push already scheduled a shorter tick
		}
		m.flushPending()
		return m, nil

	case exportDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			cmd = m.setStatus(fmt.Sprintf("export failed: %v", msg.err), true)
		} else {
			cmd = m.setStatus(fmt.Sprintf("exported %d lines to %s", msg.count, msg.path), false)
		}
		return m, cmd

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleSourceEvent applies one source.Event to the model. Line events
// are coalesced through the throttle before being applied; every other
// kind is applied immediately since they're rare control events.
func (m *Model) handleSourceEvent(ev source.Event) tea.Cmd {
	switch ev.Kind {
	case source.EventLine:
		m.flushGen++
		gen := m.flushGen
		threshold := m.coalescer.Push(ev.Text)
		return tea.Tick(threshold, func(time.Time) tea.Msg { return flushTickMsg{gen: gen} })

	case source.EventSystemLine:
		m.addSystemLine(ev.Text)
		return nil

	case source.EventConnected:
		m.isConnected = true
		m.peer = ev.Peer
		return nil

	case source.EventDisconnected:
		m.isConnected = false
		m.peer = ""
		return nil

	case source.EventError:
		return m.setStatus("source error: "+ev.Text, true)
	}
	return nil
}

// flushPending drains the coalescer and applies its lines to state.
func (m *Model) flushPending() {
	lines := m.coalescer.Flush()
	if len(lines) == 0 {
		return
	}
	wasAtBottom := m.state.FollowTail()
	for _, line := range lines {
		m.state.AddLine(line, true)
	}
	if wasAtBottom {
		m.state.ScrollToEnd()
	}
}

// viewportHeight returns the number of log rows that fit given the
// current terminal height, reserving room for header/status/footer/input
// chrome.
func (m Model) viewportHeight() int {
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}

// handleKeyMsg dispatches key events based on whether a query field is
// being edited.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing != inputNone {
		return m.handleEditKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.commitEdit()

	case tea.KeyEscape:
		m.editing = inputNone
		m.editBuf = ""
		m.fieldErr = ""
		return m, nil

	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m, nil

	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// commitEdit compiles editBuf for the active field. A compile failure
// retains the previous compiled artifact and marks the field with the
// error (spec's CompileError contract); success rebuilds the filtered
// index and persists the query.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	field := m.editing
	text := m.editBuf
	m.editing = inputNone
	m.editBuf = ""

	switch field {
	case inputHide:
		if text == "" {
			m.hideInput = ""
			m.state.Filter.HideRegex = nil
		} else {
			re, err := regexp.Compile(text)
			if err != nil {
				m.fieldErr = fmt.Sprintf("hide: invalid regex: %v", err)
				return m, nil
			}
			m.hideInput = text
			m.state.Filter.HideRegex = re
		}

	case inputFilter:
		if text == "" {
			m.filterInput = ""
			m.state.Filter.FilterExpr = nil
		} else {
			expr, err := filterlang.Parse(text)
			if err != nil {
				m.fieldErr = fmt.Sprintf("filter: %v", err)
				return m, nil
			}
			m.filterInput = text
			m.state.Filter.FilterExpr = expr
		}

	case inputHighlight:
		if text == "" {
			m.highlightInput = ""
			m.state.Filter.HighlightExpr = nil
		} else {
			expr, err := filterlang.Parse(text)
			if err != nil {
				m.fieldErr = fmt.Sprintf("highlight: %v", err)
				return m, nil
			}
			m.highlightInput = text
			m.state.Filter.HighlightExpr = expr
		}
	}

	m.fieldErr = ""
	m.state.RebuildFilteredIndices()
	return m, m.saveQueryCmd()
}

func (m Model) saveQueryCmd() tea.Cmd {
	q := query.Query{
		HideInput:      m.hideInput,
		FilterInput:    m.filterInput,
		HighlightInput: m.highlightInput,
	}
	if m.lineStart != nil {
		q.LineStartRegex = m.lineStart.String()
	}
	return func() tea.Msg {
		if err := query.Save(q); err != nil {
			return common.WarnMsg{Warnings: []string{fmt.Sprintf("query save failed: %v", err)}}
		}
		return nil
	}
}

// handleNormalKey handles key events outside of query-field editing.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.state.ScrollUp(1)
		return m, nil

	case "down", "j":
		m.state.ScrollDown(1)
		return m, nil

	case "pgup":
		m.state.ScrollUp(m.viewportHeight())
		return m, nil

	case "pgdown":
		m.state.ScrollDown(m.viewportHeight())
		return m, nil

	case "g":
		m.state.ScrollToStart()
		return m, nil

	case "G":
		m.state.ScrollToEnd()
		return m, nil

	case "h":
		m.editing = inputHide
		m.editBuf = m.hideInput
		return m, nil

	case "/":
		m.editing = inputFilter
		m.editBuf = m.filterInput
		return m, nil

	case "H":
		m.editing = inputHighlight
		m.editBuf = m.highlightInput
		return m, nil

	case "y":
		line, ok := m.CurrentLine()
		if !ok {
			return m, nil
		}
		if err := clipboard.Copy(line); err != nil {
			return m, m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		}
		return m, m.setStatus("copied current line", false)

	case "e":
		return m, m.exportCmd()

	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// filteredByteSize sums the content length of every line currently
// passing the filter, for the status bar's "shown of total" size readout.
func (m Model) filteredByteSize() uint64 {
	var total uint64
	for _, idx := range m.state.FilteredIndices {
		if line, ok := m.state.Buffer.At(idx); ok {
			total += uint64(len(line.Content))
		}
	}
	return total
}

// StartupErr reports the ingest-startup failure, if any, delivered via a
// common.ErrMsg (e.g. a file that can't be opened, or a port already
// bound). The CLI entry point checks this after the program exits to
// produce a non-zero exit code on startup failure per spec.md §6.
func (m Model) StartupErr() error {
	return m.startupErr
}

// CurrentLine returns the raw content of the line at the bottom of the
// viewport — the clipboard boundary the controller exposes to the "y"
// keybinding.
func (m Model) CurrentLine() (string, bool) {
	if len(m.state.FilteredIndices) == 0 {
		return "", false
	}
	idx := m.state.FilteredIndices[m.state.BottomLineIdx()]
	line, ok := m.state.Buffer.At(idx)
	if !ok {
		return "", false
	}
	return line.Content, true
}

// View renders the header, the visible window of filtered lines, the
// query/status chrome, and the footer.
func (m Model) View() string {
	if m.startupErr != nil {
		return fmt.Sprintf("error: %v\n", m.startupErr)
	}

	var b strings.Builder

	followStr := ""
	if m.state.FollowTail() {
		followStr = " [FOLLOWING]"
	}
	connStr := ""
	if m.isConnected {
		connStr = fmt.Sprintf(" [connected: %s]", m.peer)
	}
	title := fmt.Sprintf("octolog: %s%s%s", m.label, followStr, connStr)
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	sizeLine := fmt.Sprintf("%d lines, %s shown of %d total, %s buffered",
		len(m.state.FilteredIndices), format.Size(m.filteredByteSize()),
		m.state.Buffer.Len(), format.Size(m.state.Buffer.ByteSize()))
	b.WriteString(styles.Info.Render(sizeLine))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")

	b.WriteString(m.renderQueryLine("hide", m.hideInput, inputHide))
	b.WriteString(m.renderQueryLine("filter", m.filterInput, inputFilter))
	b.WriteString(m.renderQueryLine("highlight", m.highlightInput, inputHighlight))

	if m.fieldErr != "" {
		b.WriteString(styles.Error.Render(m.fieldErr))
		b.WriteString("\n")
	}

	start, end := m.termView.VisibleRange(m.state.BottomLineIdx(), len(m.state.FilteredIndices))
	if len(m.state.FilteredIndices) == 0 {
		b.WriteString(styles.Info.Render("  (no lines)"))
		b.WriteString("\n")
	} else {
		for i := start; i < end; i++ {
			idx := m.state.FilteredIndices[i]
			line, ok := m.state.Buffer.At(idx)
			if !ok {
				continue
			}
			display := m.state.Filter.ApplyHide(line.Content)
			segments := highlight.Render(display, m.state.Filter.HighlightExpr)
			var rendered strings.Builder
			for _, seg := range segments {
				rendered.WriteString(styles.RenderSegment(seg.Style, seg.Text))
			}
			fmt.Fprintf(&b, "%6d  %s\n", idx+1, rendered.String())
		}
	}

	if m.statusMessage != "" {
		style := styles.Info
		if m.statusIsError {
			style = styles.Error
		}
		b.WriteString("\n")
		b.WriteString(style.Render("  " + m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString(styles.Help.Render(
		"↑↓/jk: scroll | g/G: top/bottom | h: hide | /: filter | H: highlight | y: copy | e: export | q: quit",
	))

	return b.String()
}

func (m Model) renderQueryLine(label, value string, field inputField) string {
	text := value
	if m.editing == field {
		text = m.editBuf + "█"
	}
	if text == "" {
		return ""
	}
	return styles.Info.Render(fmt.Sprintf("%s: %s", label, text)) + "\n"
}
