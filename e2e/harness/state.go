package harness

// State represents a snapshot of the entire TUI state for verification.
type State struct {
	Method       string
	URL          string
	OptionsMode  string // "Headers", "Body", "Params"
	Response     string
	InFlight     bool
	Loading      bool
	Notification string
}

// CaptureState captures the current state of the TUI session.
func (s *TUISession) CaptureState() *State {
	mv := s.model
	return &State{
		Method:       mv.Method(),
		URL:          mv.URL(),
		OptionsMode:  mv.OptionsPanel().Mode().String(),
		Response:     mv.ResponseText(),
		InFlight:     mv.InFlight(),
		Loading:      mv.ResponsePanel().IsLoading(),
		Notification: mv.Notification(),
	}
}

// State returns the current state (alias for CaptureState).
func (s *TUISession) State() *State {
	return s.CaptureState()
}
