package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/artpar/lazycurl/internal/app"
	"github.com/artpar/lazycurl/internal/logging"
	"github.com/artpar/lazycurl/internal/tui/views"
)

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lazycurl",
		Short:   "LazyCurl - a terminal HTTP requester",
		Long:    "LazyCurl is a single-screen terminal client for firing HTTP requests and reading the raw response.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	return cmd
}

// tuiModel wraps the MainView for bubbletea
type tuiModel struct {
	view *views.MainView
}

func (m tuiModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated.(*views.MainView)
	return m, cmd
}

func (m tuiModel) View() string {
	return m.view.View()
}

// runTUI starts the TUI application
func runTUI() error {
	cfg, err := app.LoadConfig(os.Getenv)
	if err != nil {
		// A broken config file should not keep the screen from coming up.
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = app.DefaultConfig()
	}

	logger, err := logging.InitLogger("lazycurl", cfg.Debug)
	if err != nil {
		logger = logging.NewNopLogger()
	}

	application := app.New(app.WithConfig(cfg), app.WithLogger(logger))

	model := tuiModel{
		view: views.NewMainView(application.Executor(), application.Logger()),
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}
	return nil
}
