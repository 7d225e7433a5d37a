package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/artpar/lazycurl/internal/tui"
)

// URLBar is the single-line endpoint input. It only ever appends printable
// characters at the end or pops the last one with backspace; cursor movement
// and editing shortcuts are deliberately inert, so what you see is always the
// exact string the request will use.
type URLBar struct {
	title   string
	focused bool
	width   int
	height  int
	input   textinput.Model
}

// NewURLBar creates an empty URL bar. The underlying field is armed from the
// start: this screen has no focus cycling, so the bar accepts keys whether or
// not the panel carries the focus highlight.
func NewURLBar() *URLBar {
	input := textinput.New()
	input.Placeholder = "https://api.example.com/endpoint"
	input.Prompt = ""
	input.CharLimit = 0
	input.Focus()
	return &URLBar{
		title: "URL",
		input: input,
	}
}

// Init initializes the component.
func (p *URLBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Only rune, space and backspace keys reach the
// underlying field; everything else is ignored so the cursor stays pinned
// to the end of the line.
func (p *URLBar) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tui.FocusMsg:
		p.Focus()

	case tui.BlurMsg:
		p.Blur()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			p.input.CursorEnd()
			return p, cmd
		}

	default:
		// Blink messages and friends still need to reach the field.
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// View renders the URL bar.
func (p *URLBar) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	innerWidth := p.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	content := tui.RenderTitle(p.title, innerWidth, p.focused) + "\n" + p.input.View()
	return tui.RenderBorder(content, p.width, p.height, p.focused)
}

// Title returns the component title.
func (p *URLBar) Title() string {
	return p.title
}

// Focused returns true if focused.
func (p *URLBar) Focused() bool {
	return p.focused
}

// Focus highlights the panel frame. The text field itself is always armed.
func (p *URLBar) Focus() {
	p.focused = true
}

// Blur removes the frame highlight.
func (p *URLBar) Blur() {
	p.focused = false
}

// SetSize sets dimensions.
func (p *URLBar) SetSize(width, height int) {
	p.width = width
	p.height = height
	inputWidth := width - 2*tui.PanelPaddingH - 3
	if inputWidth < 1 {
		inputWidth = 1
	}
	p.input.Width = inputWidth
}

// Width returns the width.
func (p *URLBar) Width() int {
	return p.width
}

// Height returns the height.
func (p *URLBar) Height() int {
	return p.height
}

// Value returns the current URL text.
func (p *URLBar) Value() string {
	return p.input.Value()
}

// SetValue replaces the URL text.
func (p *URLBar) SetValue(value string) {
	p.input.SetValue(value)
	p.input.CursorEnd()
}
