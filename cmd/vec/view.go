package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/log"
	"go.jacobcolvin.com/vec/symbol"
)

const (
	logLines     = 4
	maxListWidth = 48
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view file",
		Short: "Browse the ports of an entity next to its symbol",
		Long: `view shows the port list of the entity next to its block symbol, drawn
with half-block characters. The selected port is highlighted in the symbol.
Log output is shown below.

Keys: up/k and down/j select a port, home/end jump, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.view(args[0])
		},
	}
}

func (a *app) view(arg string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: view needs an interactive terminal", ErrNotTerminal)
	}

	pub := log.NewPublisher()
	//nolint:errcheck // Close always returns nil.
	defer pub.Close()

	handler, err := a.logCfg.NewHandler(pub)
	if err != nil {
		return err
	}

	logger := slog.New(handler)
	sub := pub.Subscribe()

	e, err := a.parse(arg, logger)
	if err != nil {
		return err
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}

	m := newViewModel(e, symbol.NewRenderer(a.file.Symbol), sub, logger, cols, rows)

	_, err = tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}

	return nil
}

// logMsg carries one line of log output.
type logMsg string

// logClosedMsg signals that the log subscription ended.
type logClosedMsg struct{}

func waitForLog(sub *log.Subscription) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-sub.C()
		if !ok {
			return logClosedMsg{}
		}

		return logMsg(line)
	}
}

type viewStyles struct {
	selected lipgloss.Style
	port     lipgloss.Style
	detail   lipgloss.Style
	log      lipgloss.Style
	status   lipgloss.Style
}

func newViewStyles() viewStyles {
	return viewStyles{
		selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		port:     lipgloss.NewStyle(),
		detail:   lipgloss.NewStyle().Faint(true),
		log:      lipgloss.NewStyle().Faint(true),
		status:   lipgloss.NewStyle().Bold(true),
	}
}

// viewModel is the bubbletea model of "vec view".
type viewModel struct {
	entity   *entity.Entity
	ports    []entity.Port
	renderer *symbol.Renderer
	sub      *log.Subscription
	logger   *slog.Logger
	styles   viewStyles

	frame    *image.RGBA
	buf      strings.Builder
	logs     []string
	cols     int
	rows     int
	selected int
}

func newViewModel(
	e *entity.Entity,
	r *symbol.Renderer,
	sub *log.Subscription,
	logger *slog.Logger,
	cols, rows int,
) *viewModel {
	m := &viewModel{
		entity:   e,
		ports:    e.Ports(),
		renderer: r,
		sub:      sub,
		logger:   logger,
		styles:   newViewStyles(),
		cols:     cols,
		rows:     rows,
	}
	m.redraw()

	return m
}

// Init starts listening for log lines.
func (m *viewModel) Init() tea.Cmd {
	return waitForLog(m.sub)
}

// Update handles key, resize and log messages.
func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.selectPort(m.selected - 1)
		case "down", "j":
			m.selectPort(m.selected + 1)
		case "home", "g":
			m.selectPort(0)
		case "end", "G":
			m.selectPort(len(m.ports) - 1)
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.redraw()

	case logMsg:
		m.logs = append(m.logs, string(msg))
		if len(m.logs) > logLines {
			m.logs = m.logs[len(m.logs)-logLines:]
		}

		return m, waitForLog(m.sub)

	case logClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m *viewModel) selectPort(i int) {
	i = max(0, min(i, len(m.ports)-1))
	if i == m.selected || len(m.ports) == 0 {
		return
	}

	m.selected = i
	m.redraw()

	p := m.ports[i]
	m.logger.Debug("selected port",
		slog.String("name", p.Name),
		slog.String("direction", p.Direction.String()),
	)
}

// listWidth returns the number of columns used by the port list.
func (m *viewModel) listWidth() int {
	w := 0
	for i := range m.ports {
		w = max(w, ansi.StringWidth(m.portLine(i)))
	}

	return min(w+2, maxListWidth, max(m.cols/2, 1))
}

// symbolSize returns the cells available for the symbol.
func (m *viewModel) symbolSize() (int, int) {
	cols := max(m.cols-m.listWidth(), 1)
	rows := max(m.rows-logLines-1, 1)

	return cols, rows
}

func (m *viewModel) redraw() {
	var img *image.RGBA
	if len(m.ports) > 0 {
		img = m.renderer.Highlight(m.entity, m.selected)
	} else {
		img = m.renderer.Image(m.entity)
	}

	cols, rows := m.symbolSize()
	m.frame = fitImage(img, cols, rows, img.At(0, 0))
}

// portLine describes one port, e.g. "IN   load_i[WIDTH] clock low".
func (m *viewModel) portLine(i int) string {
	p := m.ports[i]

	s := fmt.Sprintf("%-4s %s", p.Direction, p.Name)
	if p.Vector.IsBus() {
		s += "[" + p.Vector.Display + "]"
	}

	var marks []string
	if p.IsClock {
		marks = append(marks, "clock")
	}

	if p.IsReset {
		marks = append(marks, "reset")
	}

	if p.IsLowActive {
		marks = append(marks, "low")
	}

	if len(marks) > 0 {
		s += " " + m.styles.detail.Render(strings.Join(marks, " "))
	}

	return s
}

func (m *viewModel) portList() string {
	width := m.listWidth()
	lines := make([]string, 0, len(m.ports))

	for i := range m.ports {
		line := ansi.Truncate(m.portLine(i), width-1, "…")

		style := m.styles.port
		if i == m.selected {
			style = m.styles.selected
		}

		lines = append(lines, style.Width(width).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// View renders the port list, the symbol, the log lines and a status line.
func (m *viewModel) View() tea.View {
	m.buf.Reset()
	halfBlocks(m.frame, &m.buf)

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.portList(), m.buf.String())

	logs := make([]string, logLines)
	for i, line := range m.logs {
		logs[logLines-len(m.logs)+i] = m.styles.log.Render(ansi.Truncate(line, m.cols, "…"))
	}

	status := fmt.Sprintf("%s  %d/%d  up/down select  q quit", m.entity.Name(), m.selected+1, len(m.ports))

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left,
		top,
		strings.Join(logs, "\n"),
		m.styles.status.Render(ansi.Truncate(status, m.cols, "…")),
	))
	v.AltScreen = true

	return v
}
