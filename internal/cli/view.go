package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cfgviz/cfgviz/pkg/layout"
	"github.com/cfgviz/cfgviz/pkg/view"
)

// panStep is the keyboard pan distance in cells.
const panStep = 4

// zoomStep is the number of wheel steps a zoom key applies.
const zoomStep = 1

// viewCommand creates the view command for the interactive viewer.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [graph.toml]",
		Short: "Explore a control-flow graph interactively",
		Long: `Explore a control-flow graph interactively.

The view command opens a full-screen panel showing the laid-out graph.
Drag with the mouse to pan, scroll to zoom at the cursor, and click a
block or edge to select it. Without a file argument it shows a small
built-in demo function.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gf, err := resolveGraph(args)
			if err != nil {
				return err
			}
			panel, err := view.NewPanel(view.Options{})
			if err != nil {
				return err
			}
			c.Logger.Debug("Opened panel", "panel", panel.ID(), "graph", gf.Name)
			m := newViewerModel(gf, panel)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// Key Map
// =============================================================================

type viewerKeys struct {
	Fit     key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newViewerKeys() viewerKeys {
	return viewerKeys{
		Fit: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fit"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-line help bar.
func (k viewerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Fit, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

// FullHelp is the expanded help shown on ?.
func (k viewerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fit, k.ZoomIn, k.ZoomOut},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// Viewer Model
// =============================================================================

// viewerModel is the bubbletea model hosting a [view.Panel]. Every input
// message advances the panel one frame; View rasterizes the frame's
// primitives into a cell canvas.
type viewerModel struct {
	gf    *graphFile
	panel *view.Panel
	keys  viewerKeys
	help  help.Model

	width  int
	height int
	ready  bool

	pointer  view.Pointer
	frame    view.FrameResult
	frameErr error
}

func newViewerModel(gf *graphFile, panel *view.Panel) *viewerModel {
	return &viewerModel{
		gf:    gf,
		panel: panel,
		keys:  newViewerKeys(),
		help:  help.New(),
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = m.width > 0 && m.height > chromeRows
		m.pointer.Inside = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Fit):
			m.panel.Fit()
		case key.Matches(msg, m.keys.ZoomIn):
			m.panel.ZoomBy(zoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.panel.ZoomBy(-zoomStep)
		case key.Matches(msg, m.keys.Left):
			m.panel.PanBy(panStep, 0)
		case key.Matches(msg, m.keys.Right):
			m.panel.PanBy(-panStep, 0)
		case key.Matches(msg, m.keys.Up):
			m.panel.PanBy(0, panStep)
		case key.Matches(msg, m.keys.Down):
			m.panel.PanBy(0, -panStep)
		}

	case tea.MouseMsg:
		m.pointer.Pos = layout.Point{X: float64(msg.X), Y: float64(msg.Y)}
		m.pointer.Inside = true
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch msg.Action {
			case tea.MouseActionPress:
				m.pointer.Down = true
			case tea.MouseActionRelease:
				m.pointer.Down = false
			}
		case tea.MouseButtonWheelUp:
			m.pointer.Scroll = 1
		case tea.MouseButtonWheelDown:
			m.pointer.Scroll = -1
		case tea.MouseButtonNone:
			if msg.Action == tea.MouseActionRelease {
				m.pointer.Down = false
			}
		}
	}

	if m.ready {
		m.runFrame()
	}
	return m, nil
}

// chromeRows is the screen estate below the canvas: status bar plus help.
const chromeRows = 2

// runFrame advances the panel one frame with the current pointer state.
// Scroll is an impulse, consumed by the frame it was delivered to.
func (m *viewerModel) runFrame() {
	in := view.Input{
		Size:    layout.Point{X: float64(m.width), Y: float64(m.height - chromeRows)},
		Pointer: m.pointer,
	}
	m.frame, m.frameErr = m.panel.Frame(m.gf, in)
	m.pointer.Scroll = 0
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}

	cv := newCanvas(m.width, m.height-chromeRows)
	cv.draw(m.frame.Primitives)

	var b strings.Builder
	b.WriteString(cv.String())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// statusLine summarizes the frame: graph name, sizes, zoom, and selection.
func (m *viewerModel) statusLine() string {
	name := m.gf.Name
	if name == "" {
		name = "graph"
	}

	var parts []string
	parts = append(parts, StyleTitle.Render(name))
	if l := m.frame.Layout; l != nil {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d blocks, %d edges", l.NodeCount(), l.EdgeCount())))
	}
	parts = append(parts, StyleDim.Render(fmt.Sprintf("zoom %.0f%%", m.panel.State().Viewport.Zoom*100)))

	if m.frame.Layout != nil && m.frame.Selected != view.NoNode {
		parts = append(parts, StyleValue.Render("▸ "+m.frame.Layout.Node(m.frame.Selected).Key))
	}
	if m.frameErr != nil {
		parts = append(parts, StyleDim.Render("! "+m.frameErr.Error()))
	}
	return strings.Join(parts, StyleDim.Render("  │  "))
}
