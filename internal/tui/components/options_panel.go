package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/lazycurl/internal/tui"
)

// OptionsTitle is the fixed title of the options panel. It doubles as the
// key hint for switching sections.
const OptionsTitle = "Options (H: Headers, B: Body, P: Params)"

// OptionsMode selects which request section the options panel shows.
type OptionsMode int

const (
	OptionsHeaders OptionsMode = iota
	OptionsBody
	OptionsParams
)

// String returns the section name.
func (m OptionsMode) String() string {
	switch m {
	case OptionsBody:
		return "Body"
	case OptionsParams:
		return "Params"
	default:
		return "Headers"
	}
}

// OptionsPanel shows one of the request option sections. Editing the
// sections is not implemented, so each one renders its empty state.
type OptionsPanel struct {
	title   string
	focused bool
	width   int
	height  int
	mode    OptionsMode
}

// NewOptionsPanel creates an options panel showing the headers section.
func NewOptionsPanel() *OptionsPanel {
	return &OptionsPanel{
		title: OptionsTitle,
		mode:  OptionsHeaders,
	}
}

// Init initializes the component.
func (p *OptionsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (p *OptionsPanel) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tui.FocusMsg:
		p.focused = true

	case tui.BlurMsg:
		p.focused = false
	}

	return p, nil
}

// View renders the active section.
func (p *OptionsPanel) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	innerWidth := p.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	section := sectionStyle.Render(p.mode.String())
	empty := emptyStyle.Render(p.emptyState())

	content := tui.RenderTitle(p.title, innerWidth, p.focused) +
		"\n" + section + " " + empty
	return tui.RenderBorder(content, p.width, p.height, p.focused)
}

func (p *OptionsPanel) emptyState() string {
	switch p.mode {
	case OptionsBody:
		return "No body defined"
	case OptionsParams:
		return "No params defined"
	default:
		return "No headers defined"
	}
}

// Title returns the component title.
func (p *OptionsPanel) Title() string {
	return p.title
}

// Focused returns true if focused.
func (p *OptionsPanel) Focused() bool {
	return p.focused
}

// Focus sets the component as focused.
func (p *OptionsPanel) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *OptionsPanel) Blur() {
	p.focused = false
}

// SetSize sets dimensions.
func (p *OptionsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the width.
func (p *OptionsPanel) Width() int {
	return p.width
}

// Height returns the height.
func (p *OptionsPanel) Height() int {
	return p.height
}

// Mode returns the active section.
func (p *OptionsPanel) Mode() OptionsMode {
	return p.mode
}

// SetMode switches the active section.
func (p *OptionsPanel) SetMode(mode OptionsMode) {
	p.mode = mode
}
