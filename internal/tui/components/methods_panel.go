// Package components contains the panels that make up the main screen.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/lazycurl/internal/core"
	"github.com/artpar/lazycurl/internal/tui"
)

// MethodsPanel lists the supported HTTP methods and tracks which one is
// selected. The selection never leaves the list: moving up from the first
// entry or down from the last is a no-op.
type MethodsPanel struct {
	title    string
	focused  bool
	width    int
	height   int
	methods  []string
	selected int
}

// NewMethodsPanel creates a methods panel with GET selected.
func NewMethodsPanel() *MethodsPanel {
	return &MethodsPanel{
		title:   "Method",
		methods: core.Methods(),
	}
}

// Init initializes the component.
func (p *MethodsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages. Arrow keys move the selection whether or not the
// panel is focused; on this screen every panel listens all the time.
func (p *MethodsPanel) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tui.FocusMsg:
		p.focused = true

	case tui.BlurMsg:
		p.focused = false

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
		case tea.KeyDown:
			p.MoveDown()
		}
	}

	return p, nil
}

// View renders the method list with the selection highlighted.
func (p *MethodsPanel) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	innerWidth := p.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	lines := make([]string, 0, len(p.methods)+1)
	lines = append(lines, tui.RenderTitle(p.title, innerWidth, p.focused))
	for i, method := range p.methods {
		marker := "  "
		if i == p.selected {
			marker = "» "
		}
		label := tui.PadRight(marker+method, innerWidth)
		if i == p.selected {
			lines = append(lines, p.selectedStyle(method).Render(label))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(p.methodColor(method)).
				Render(label))
		}
	}

	return tui.RenderBorder(strings.Join(lines, "\n"), p.width, p.height, p.focused)
}

func (p *MethodsPanel) selectedStyle(method string) lipgloss.Style {
	fg := lipgloss.Color("255")
	if method == "POST" {
		fg = lipgloss.Color("0")
	}
	return lipgloss.NewStyle().
		Bold(true).
		Background(p.methodColor(method)).
		Foreground(fg)
}

func (p *MethodsPanel) methodColor(method string) lipgloss.Color {
	switch method {
	case "GET":
		return lipgloss.Color("34")
	case "POST":
		return lipgloss.Color("214")
	case "PUT":
		return lipgloss.Color("33")
	case "PATCH":
		return lipgloss.Color("141")
	case "DELETE":
		return lipgloss.Color("160")
	default:
		return lipgloss.Color("240")
	}
}

// Title returns the component title.
func (p *MethodsPanel) Title() string {
	return p.title
}

// Focused returns true if focused.
func (p *MethodsPanel) Focused() bool {
	return p.focused
}

// Focus sets the component as focused.
func (p *MethodsPanel) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *MethodsPanel) Blur() {
	p.focused = false
}

// SetSize sets dimensions.
func (p *MethodsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the width.
func (p *MethodsPanel) Width() int {
	return p.width
}

// Height returns the height.
func (p *MethodsPanel) Height() int {
	return p.height
}

// MoveUp moves the selection one entry up, stopping at the top.
func (p *MethodsPanel) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection one entry down, stopping at the bottom.
func (p *MethodsPanel) MoveDown() {
	if p.selected < len(p.methods)-1 {
		p.selected++
	}
}

// Selected returns the currently selected method.
func (p *MethodsPanel) Selected() string {
	return p.methods[p.selected]
}

// SelectedIndex returns the index of the selected method.
func (p *MethodsPanel) SelectedIndex() int {
	return p.selected
}

// SetSelectedIndex sets the selection, clamping out-of-range values.
func (p *MethodsPanel) SetSelectedIndex(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(p.methods)-1 {
		index = len(p.methods) - 1
	}
	p.selected = index
}

// Methods returns the listed methods in display order.
func (p *MethodsPanel) Methods() []string {
	return p.methods
}
