// Package tui provides the building blocks shared by all terminal panels.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is the interface for all TUI panels.
type Component interface {
	// Init initializes the component.
	Init() tea.Cmd

	// Update handles messages and returns the updated component.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component.
	View() string

	// Title returns the component title.
	Title() string

	// Focused returns true if the component is focused.
	Focused() bool

	// Focus sets the component as focused.
	Focus()

	// Blur removes focus from the component.
	Blur()

	// SetSize sets the component dimensions, border included.
	SetSize(width, height int)

	// Width returns the component width.
	Width() int

	// Height returns the component height.
	Height() int
}

// Panel padding constants for comfortable spacing
const (
	PanelPaddingV = 0 // Vertical padding (lines) - kept minimal to preserve content
	PanelPaddingH = 1 // Horizontal padding (chars)
)

// Messages

// FocusMsg is sent when a component should gain focus.
type FocusMsg struct{}

// BlurMsg is sent when a component should lose focus.
type BlurMsg struct{}

// BaseComponent provides common functionality for panels.
type BaseComponent struct {
	title   string
	focused bool
	width   int
	height  int
}

// NewBaseComponent creates a new base component.
func NewBaseComponent(title string) *BaseComponent {
	return &BaseComponent{
		title: title,
	}
}

// Init initializes the component.
func (c *BaseComponent) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (c *BaseComponent) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
	case FocusMsg:
		c.focused = true
	case BlurMsg:
		c.focused = false
	}
	return c, nil
}

// View renders the component.
func (c *BaseComponent) View() string {
	content := fmt.Sprintf("[ %s ]", c.title)
	style := lipgloss.NewStyle().
		Width(c.width).
		Height(c.height).
		Align(lipgloss.Center, lipgloss.Center)
	return style.Render(content)
}

// Title returns the component title.
func (c *BaseComponent) Title() string {
	return c.title
}

// Focused returns true if focused.
func (c *BaseComponent) Focused() bool {
	return c.focused
}

// Focus sets the component as focused.
func (c *BaseComponent) Focus() {
	c.focused = true
}

// Blur removes focus.
func (c *BaseComponent) Blur() {
	c.focused = false
}

// SetSize sets dimensions.
func (c *BaseComponent) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Width returns the width.
func (c *BaseComponent) Width() int {
	return c.width
}

// Height returns the height.
func (c *BaseComponent) Height() int {
	return c.height
}

// Styles

// Styles holds the shared panel styles.
type Styles struct {
	Focused   lipgloss.Style
	Unfocused lipgloss.Style
	Title     lipgloss.Style
}

// DefaultStyles returns default styling.
func DefaultStyles() Styles {
	return Styles{
		Focused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Unfocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")),
	}
}

// RenderTitle renders a title bar spanning the given inner width.
func RenderTitle(title string, width int, focused bool) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)

	if focused {
		style = style.Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62"))
	} else {
		style = style.Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))
	}

	return style.Render(Truncate(title, width))
}

// RenderBorder wraps content in a rounded border. Width and height are the
// total footprint of the result, frame included.
func RenderBorder(content string, width, height int, focused bool) string {
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	style := lipgloss.NewStyle().
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		BorderStyle(lipgloss.RoundedBorder())

	if focused {
		style = style.BorderForeground(lipgloss.Color("62"))
	} else {
		style = style.BorderForeground(lipgloss.Color("240"))
	}

	return style.Render(content)
}

// Truncate shortens a string to fit within a width, counting runes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// PadRight pads a string to a given width, counting runes.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
