// Package views assembles the panels into the single LazyCurl screen.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/lazycurl/internal/interfaces"
	"github.com/artpar/lazycurl/internal/logging"
	httpclient "github.com/artpar/lazycurl/internal/protocol/http"
	"github.com/artpar/lazycurl/internal/tui"
	"github.com/artpar/lazycurl/internal/tui/components"
)

const bannerTitle = "LazyCurl - HTTP Requester"

// framePeriod is the redraw heartbeat. The screen repaints on every message
// anyway; the tick keeps it honest when nothing else is arriving.
const framePeriod = 200 * time.Millisecond

// MainView is the whole screen: the method list on the left and the banner,
// URL bar, options display and response pane stacked on the right. Every
// panel listens at the same time, so there is no focus cycling to manage.
type MainView struct {
	width        int
	height       int
	methods      *components.MethodsPanel
	urlBar       *components.URLBar
	options      *components.OptionsPanel
	response     *components.ResponsePanel
	executor     interfaces.Executor
	logger       *slog.Logger
	inFlight     bool
	notification string
}

// responseMsg delivers the executor's result back to the update loop.
type responseMsg struct {
	text string
}

// frameTickMsg is the redraw heartbeat.
type frameTickMsg time.Time

// clearNotificationMsg is sent to clear the notification.
type clearNotificationMsg struct{}

// NewMainView creates the screen. A nil executor falls back to a plain HTTP
// executor and a nil logger discards everything.
func NewMainView(executor interfaces.Executor, logger *slog.Logger) *MainView {
	if executor == nil {
		executor = httpclient.NewExecutor(nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	view := &MainView{
		methods:  components.NewMethodsPanel(),
		urlBar:   components.NewURLBar(),
		options:  components.NewOptionsPanel(),
		response: components.NewResponsePanel(),
		executor: executor,
		logger:   logger,
	}
	view.urlBar.Focus()
	return view
}

// Init initializes the view.
func (v *MainView) Init() tea.Cmd {
	return tea.Batch(v.urlBar.Init(), v.frameTick())
}

// Update handles messages.
func (v *MainView) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.updatePaneSizes()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case responseMsg:
		v.inFlight = false
		v.response.SetText(msg.text)
		v.logger.Debug("request completed", "bytes", len(msg.text))
		return v, nil

	case frameTickMsg:
		return v, v.frameTick()

	case clearNotificationMsg:
		v.notification = ""
		return v, nil
	}

	// Everything else is plumbing for the widgets: cursor blinks for the
	// URL bar, spinner ticks for the response pane.
	var cmds []tea.Cmd

	updatedBar, cmd := v.urlBar.Update(msg)
	v.urlBar = updatedBar.(*components.URLBar)
	cmds = append(cmds, cmd)

	updatedResponse, cmd := v.response.Update(msg)
	v.response = updatedResponse.(*components.ResponsePanel)
	cmds = append(cmds, cmd)

	return v, tea.Batch(cmds...)
}

func (v *MainView) handleKeyMsg(msg tea.KeyMsg) (tui.Component, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		v.logger.Debug("session ended")
		return v, tea.Quit

	case tea.KeyUp, tea.KeyDown:
		updated, cmd := v.methods.Update(msg)
		v.methods = updated.(*components.MethodsPanel)
		return v, cmd

	case tea.KeyEnter:
		return v, v.dispatchRequest()

	case tea.KeyPgUp, tea.KeyPgDown:
		updated, cmd := v.response.Update(msg)
		v.response = updated.(*components.ResponsePanel)
		return v, cmd

	case tea.KeyCtrlY:
		return v.handleCopy(v.response.Text())

	case tea.KeyRunes:
		// Uppercase letters switch the options section; their lowercase
		// forms are ordinary URL characters.
		if len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'H':
				v.options.SetMode(components.OptionsHeaders)
				return v, nil
			case 'B':
				v.options.SetMode(components.OptionsBody)
				return v, nil
			case 'P':
				v.options.SetMode(components.OptionsParams)
				return v, nil
			}
		}
		return v.forwardToURLBar(msg)

	case tea.KeySpace, tea.KeyBackspace:
		return v.forwardToURLBar(msg)
	}

	// Every other key is deliberately inert.
	return v, nil
}

func (v *MainView) forwardToURLBar(msg tea.Msg) (tui.Component, tea.Cmd) {
	updated, cmd := v.urlBar.Update(msg)
	v.urlBar = updated.(*components.URLBar)
	return v, cmd
}

// dispatchRequest starts the selected request in the background. At most one
// request runs at a time; Enter is ignored while one is pending, and with an
// empty URL it only flashes a notice without touching the response text.
func (v *MainView) dispatchRequest() tea.Cmd {
	if v.inFlight {
		return nil
	}

	url := v.urlBar.Value()
	if url == "" {
		v.notification = "✗ URL is empty"
		return v.scheduleNotificationClear()
	}

	method := v.methods.Selected()
	v.inFlight = true
	v.logger.Debug("dispatching request", "method", method, "url", url)

	return tea.Batch(v.response.SetLoading(true), v.sendRequest(method, url))
}

// sendRequest runs the executor off the update loop and reports back with a
// responseMsg. The options sections cannot be populated, so every request
// goes out with no extra headers and an empty body.
func (v *MainView) sendRequest(method, url string) tea.Cmd {
	executor := v.executor
	return func() tea.Msg {
		// The executor's client enforces the configured timeout.
		text := executor.Execute(context.Background(), method, url, nil, "")
		return responseMsg{text: text}
	}
}

func (v *MainView) handleCopy(content string) (tui.Component, tea.Cmd) {
	err := clipboard.WriteAll(content)
	if err != nil {
		v.notification = "✗ Copy failed"
	} else {
		size := len(content)
		if size > 1024 {
			v.notification = fmt.Sprintf("✓ Copied %.1fKB", float64(size)/1024)
		} else {
			v.notification = fmt.Sprintf("✓ Copied %dB", size)
		}
	}
	return v, v.scheduleNotificationClear()
}

func (v *MainView) scheduleNotificationClear() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

func (v *MainView) frameTick() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (v *MainView) updatePaneSizes() {
	if v.width == 0 || v.height == 0 {
		return
	}

	// [Methods ~10%] | [Banner / URL / Options / Response]
	methodsWidth := v.width * 10 / 100
	if methodsWidth < 12 {
		methodsWidth = 12
	}
	if methodsWidth > 20 {
		methodsWidth = 20
	}
	rightWidth := v.width - methodsWidth

	// Reserve 2 lines for help bar + status bar
	totalHeight := v.height - 2
	if totalHeight < 2 {
		totalHeight = 2
	}

	const bannerHeight = 1
	const urlHeight = 4
	const optionsHeight = 4
	responseHeight := totalHeight - bannerHeight - urlHeight - optionsHeight
	if responseHeight < 3 {
		responseHeight = 3
	}

	v.methods.SetSize(methodsWidth, totalHeight)
	v.urlBar.SetSize(rightWidth, urlHeight)
	v.options.SetSize(rightWidth, optionsHeight)
	v.response.SetSize(rightWidth, responseHeight)
}

// View renders the screen.
func (v *MainView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}

	rightStack := lipgloss.JoinVertical(lipgloss.Left,
		v.renderBanner(),
		v.urlBar.View(),
		v.options.View(),
		v.response.View(),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, v.methods.View(), rightStack)

	return lipgloss.JoinVertical(lipgloss.Left, panes, v.renderHelpBar(), v.renderStatusBar())
}

func (v *MainView) renderBanner() string {
	width := v.width - v.methods.Width()
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("62")).
		Render(bannerTitle)
}

// renderHelpBar renders the keyboard shortcuts.
func (v *MainView) renderHelpBar() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	sep := sepStyle.Render(" │ ")

	hints := []string{
		keyStyle.Render("↑/↓") + descStyle.Render(" Method"),
		keyStyle.Render("Enter") + descStyle.Render(" Send"),
		keyStyle.Render("H/B/P") + descStyle.Render(" Options"),
		keyStyle.Render("PgUp/PgDn") + descStyle.Render(" Scroll"),
		keyStyle.Render("Ctrl+Y") + descStyle.Render(" Copy"),
		keyStyle.Render("Esc") + descStyle.Render(" Quit"),
	}

	barStyle := lipgloss.NewStyle().
		Width(v.width).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	return barStyle.Render(strings.Join(hints, sep))
}

// renderStatusBar renders the bottom status bar.
func (v *MainView) renderStatusBar() string {
	var items []string

	methodStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("229"))
	items = append(items, methodStyle.Render(v.methods.Selected()))

	urlStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
	url := v.urlBar.Value()
	if url == "" {
		url = "(no url)"
	}
	items = append(items, urlStyle.Render(tui.Truncate(url, v.width/2)))

	modeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 1)
	items = append(items, modeStyle.Render("Options: "+v.options.Mode().String()))

	if v.inFlight {
		pendingStyle := lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.Color("214")).
			Foreground(lipgloss.Color("0"))
		items = append(items, pendingStyle.Render("PENDING"))
	}

	if v.notification != "" {
		notifyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true).
			Padding(0, 1)
		if strings.HasPrefix(v.notification, "✗") {
			notifyStyle = notifyStyle.Foreground(lipgloss.Color("160"))
		}
		items = append(items, notifyStyle.Render(v.notification))
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Padding(0, 1)
	helpHint := helpStyle.Render("esc quit")

	leftContent := strings.Join(items, " ")
	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(helpHint)
	spacerWidth := v.width - leftWidth - rightWidth - 2
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := strings.Repeat(" ", spacerWidth)

	barStyle := lipgloss.NewStyle().
		Width(v.width).
		Background(lipgloss.Color("236"))

	return barStyle.Render(leftContent + spacer + helpHint)
}

// Name returns the view name.
func (v *MainView) Name() string {
	return "Main"
}

// Title returns the view title.
func (v *MainView) Title() string {
	return "LazyCurl"
}

// Focused returns true if focused.
func (v *MainView) Focused() bool {
	return true // MainView is always focused
}

// Focus sets focus.
func (v *MainView) Focus() {}

// Blur removes focus.
func (v *MainView) Blur() {}

// SetSize sets dimensions.
func (v *MainView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.updatePaneSizes()
}

// Width returns the width.
func (v *MainView) Width() int {
	return v.width
}

// Height returns the height.
func (v *MainView) Height() int {
	return v.height
}

// MethodsPanel returns the methods panel component.
func (v *MainView) MethodsPanel() *components.MethodsPanel {
	return v.methods
}

// URLBar returns the URL bar component.
func (v *MainView) URLBar() *components.URLBar {
	return v.urlBar
}

// OptionsPanel returns the options panel component.
func (v *MainView) OptionsPanel() *components.OptionsPanel {
	return v.options
}

// ResponsePanel returns the response panel component.
func (v *MainView) ResponsePanel() *components.ResponsePanel {
	return v.response
}

// --- State accessors for E2E testing ---

// Method returns the selected HTTP method.
func (v *MainView) Method() string {
	return v.methods.Selected()
}

// URL returns the current URL text.
func (v *MainView) URL() string {
	return v.urlBar.Value()
}

// ResponseText returns the displayed response text.
func (v *MainView) ResponseText() string {
	return v.response.Text()
}

// InFlight returns true while a request is pending.
func (v *MainView) InFlight() bool {
	return v.inFlight
}

// Notification returns the current notification message.
func (v *MainView) Notification() string {
	return v.notification
}
