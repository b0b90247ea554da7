package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibloop/internal/config"
	apperrors "github.com/agbru/fibloop/internal/errors"
	"github.com/agbru/fibloop/internal/format"
	"github.com/agbru/fibloop/internal/metrics"
	"github.com/agbru/fibloop/internal/sysmon"
)

// Layout constants for the watch dashboard.
const (
	// sparklineCapacity bounds the history when the terminal width is unknown.
	sparklineCapacity = 60
	// streamTail is the number of recent terms shown in the stream line.
	streamTail = 10
	// tickInterval paces the dashboard refresh and system sampling.
	tickInterval = time.Second
)

// Model is the root bubbletea model for the watch dashboard.
type Model struct {
	cfg     config.AppConfig
	version string

	styles styles
	keymap keyMap

	width  int
	height int

	samples *RingBuffer
	recent  []uint64

	termCount  uint64
	cycleCount uint64
	lastValue  uint64
	lastCycle  time.Duration
	startTime  time.Time

	cpuPercent float64
	memPercent float64
	heapAlloc  uint64
	numGC      uint32

	done     bool
	runErr   error
	exitCode int

	ctx    context.Context
	cancel context.CancelFunc
	ref    *programRef
}

// NewModel creates the dashboard model. cancel stops the emission run when
// the user quits.
func NewModel(ctx context.Context, cancel context.CancelFunc, cfg config.AppConfig, version string) Model {
	return Model{
		cfg:       cfg,
		version:   version,
		styles:    newStyles(),
		keymap:    defaultKeyMap(),
		samples:   NewRingBuffer(sparklineCapacity),
		startTime: time.Now(),
		exitCode:  apperrors.ExitSuccess,
		ctx:       ctx,
		cancel:    cancel,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := m.width - 6; w > 0 {
			m.samples.Resize(w)
		}
		return m, nil

	case TermMsg:
		m.termCount++
		m.lastValue = msg.Value
		m.samples.Push(float64(msg.Value))
		m.recent = append(m.recent, msg.Value)
		if len(m.recent) > streamTail {
			m.recent = m.recent[len(m.recent)-streamTail:]
		}
		return m, nil

	case CycleMsg:
		m.cycleCount = msg.Cycle + 1
		m.lastCycle = msg.Duration
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), sampleMemStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		return m, nil

	case MemStatsMsg:
		m.heapAlloc = msg.HeapAlloc
		m.numGC = msg.NumGC
		return m, nil

	case RunDoneMsg:
		m.done = true
		m.runErr = msg.Err
		m.exitCode = exitCodeForRun(msg.Err)
		return m, tea.Quit

	case ContextCanceledMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := m.styles.Header.Render(fmt.Sprintf("fibloop %s (watch)", m.version))

	elapsed := time.Since(m.startTime)
	stats := lipgloss.JoinVertical(lipgloss.Left,
		m.statLine("Threshold", strconv.FormatUint(m.cfg.Threshold, 10)),
		m.statLine("Cycles", fmt.Sprintf("%d (%d terms)", m.cycleCount, m.termCount)),
		m.statLine("Last term", strconv.FormatUint(m.lastValue, 10)),
		m.statLine("Last cycle", format.FormatExecutionDuration(m.lastCycle)),
		m.statLine("Rate", format.FormatRate(m.termCount, elapsed)),
		m.statLine("CPU / Mem", fmt.Sprintf("%.1f%% / %.1f%%", m.cpuPercent, m.memPercent)),
		m.statLine("Heap", fmt.Sprintf("%.1f MiB (%d GC)", float64(m.heapAlloc)/(1024*1024), m.numGC)),
	)

	spark := m.styles.Spark.Render(RenderSparkline(m.samples.Slice(), float64(m.cfg.Threshold)))
	stream := m.styles.Stream.Render(formatStream(m.recent))

	body := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		stats,
		"",
		spark,
		stream,
	))

	help := m.styles.Help.Render("q: quit")
	if m.done && m.runErr != nil && !apperrors.IsContextError(m.runErr) {
		help = m.styles.ErrText.Render(m.runErr.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// statLine renders one label/value row.
func (m Model) statLine(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-11s", label)) + " " + m.styles.Value.Render(value)
}

// formatStream joins the most recent terms into a single display line.
func formatStream(values []uint64) string {
	if len(values) == 0 {
		return "waiting for terms..."
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, " ")
}

// exitCodeForRun maps the emission error to the process exit code. A context
// error means the user quit the dashboard, which is a normal exit.
func exitCodeForRun(err error) int {
	if apperrors.IsContextError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitCodeForError(err)
}

// tickCmd returns a command that sends a TickMsg after the refresh interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// sampleMemStatsCmd reads runtime heap stats.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := metrics.NewMemoryCollector().Snapshot()
		return MemStatsMsg{HeapAlloc: snap.HeapAlloc, NumGC: snap.NumGC}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCanceledMsg{Err: ctx.Err()}
	}
}
