package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/lazycurl/internal/tui"
)

// ResponsePlaceholder is shown until the first request completes.
const ResponsePlaceholder = "Response will appear here..."

// ResponsePanel displays whatever the request executor returned: the raw
// response body or one of its failure messages. The text is replaced
// wholesale on every completed request and scrolls with PgUp/PgDn.
type ResponsePanel struct {
	title    string
	focused  bool
	width    int
	height   int
	viewport viewport.Model
	spinner  spinner.Model
	text     string
	loading  bool
}

// NewResponsePanel creates a response panel showing the placeholder.
func NewResponsePanel() *ResponsePanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &ResponsePanel{
		title:    "Response",
		viewport: viewport.New(0, 0),
		spinner:  s,
		text:     ResponsePlaceholder,
	}
}

// Init initializes the component.
func (p *ResponsePanel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (p *ResponsePanel) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)

	case tui.FocusMsg:
		p.focused = true

	case tui.BlurMsg:
		p.focused = false

	case spinner.TickMsg:
		if p.loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyPgUp:
			p.viewport.PageUp()
		case tea.KeyPgDown:
			p.viewport.PageDown()
		}
	}

	return p, nil
}

// View renders the response text, or the pending indicator while a request
// is in flight.
func (p *ResponsePanel) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	innerWidth := p.width - 2
	innerHeight := p.height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	title := tui.RenderTitle(p.title, innerWidth, p.focused)

	if p.loading {
		pendingHeight := innerHeight - 1
		if pendingHeight < 1 {
			pendingHeight = 1
		}
		pending := lipgloss.NewStyle().
			Width(innerWidth).
			Height(pendingHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(p.spinner.View() + " Sending request...")
		return tui.RenderBorder(title+"\n"+pending, p.width, p.height, p.focused)
	}

	return tui.RenderBorder(title+"\n"+p.viewport.View(), p.width, p.height, p.focused)
}

// Title returns the component title.
func (p *ResponsePanel) Title() string {
	return p.title
}

// Focused returns true if focused.
func (p *ResponsePanel) Focused() bool {
	return p.focused
}

// Focus sets the component as focused.
func (p *ResponsePanel) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *ResponsePanel) Blur() {
	p.focused = false
}

// SetSize sets dimensions and rewraps the content for the new width.
func (p *ResponsePanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	innerWidth := width - 2
	innerHeight := height - 3 // borders plus the title line
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}
	p.viewport.Width = innerWidth
	p.viewport.Height = innerHeight
	p.refreshContent()
}

// Width returns the width.
func (p *ResponsePanel) Width() int {
	return p.width
}

// Height returns the height.
func (p *ResponsePanel) Height() int {
	return p.height
}

// Text returns the displayed response text.
func (p *ResponsePanel) Text() string {
	return p.text
}

// SetText replaces the response text and scrolls back to the top.
func (p *ResponsePanel) SetText(text string) {
	p.text = text
	p.loading = false
	p.refreshContent()
	p.viewport.GotoTop()
}

// SetLoading toggles the pending indicator. Turning it on returns the
// command that starts the spinner ticking.
func (p *ResponsePanel) SetLoading(loading bool) tea.Cmd {
	p.loading = loading
	if loading {
		return p.spinner.Tick
	}
	return nil
}

// IsLoading returns true while a request is in flight.
func (p *ResponsePanel) IsLoading() bool {
	return p.loading
}

// ScrollOffset returns the viewport's vertical offset.
func (p *ResponsePanel) ScrollOffset() int {
	return p.viewport.YOffset
}

func (p *ResponsePanel) refreshContent() {
	if p.viewport.Width < 1 {
		return
	}
	// Long lines are wrapped here; the viewport itself does not wrap.
	wrapped := lipgloss.NewStyle().Width(p.viewport.Width).Render(p.text)
	p.viewport.SetContent(wrapped)
}
