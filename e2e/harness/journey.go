package harness

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// Journey represents a user journey test.
type Journey struct {
	t           *testing.T
	name        string
	harness     *E2EHarness
	session     *TUISession
	steps       []*Step
	currentStep int
}

// Step represents a single step in a journey.
type Step struct {
	name        string
	actions     []func(*TUISession)
	assertions  []func(*testing.T, *State)
	waitFor     func(*State) bool
	waitTimeout time.Duration
}

// NewJourney creates a new journey test.
func NewJourney(t *testing.T, name string) *Journey {
	h := New(t, Config{})

	return &Journey{
		t:       t,
		name:    name,
		harness: h,
		steps:   make([]*Step, 0),
	}
}

// Step adds a new step to the journey.
func (j *Journey) Step(name string) *StepBuilder {
	step := &Step{
		name:        name,
		actions:     make([]func(*TUISession), 0),
		assertions:  make([]func(*testing.T, *State), 0),
		waitTimeout: 5 * time.Second,
	}
	j.steps = append(j.steps, step)
	return &StepBuilder{journey: j, step: step}
}

// Run executes the journey.
func (j *Journey) Run() {
	j.t.Helper()
	j.t.Run(j.name, func(t *testing.T) {
		// Start TUI session
		j.session = j.harness.TUI().Start(t)
		defer j.session.Quit()

		// Execute each step
		for i, step := range j.steps {
			j.currentStep = i
			t.Logf("Step %d: %s", i+1, step.name)

			// Execute actions
			for _, action := range step.actions {
				action(j.session)
			}

			// Wait for condition if specified
			if step.waitFor != nil {
				if err := j.waitForCondition(step.waitFor, step.waitTimeout); err != nil {
					t.Fatalf("Step %d (%s): %v", i+1, step.name, err)
				}
			}

			// Run assertions
			state := j.session.CaptureState()
			for _, assertion := range step.assertions {
				assertion(t, state)
			}
		}
	})
}

func (j *Journey) waitForCondition(condition func(*State) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	pollInterval := 50 * time.Millisecond

	for time.Now().Before(deadline) {
		state := j.session.CaptureState()
		if condition(state) {
			return nil
		}
		time.Sleep(pollInterval)
	}

	return fmt.Errorf("timeout waiting for condition after %v", timeout)
}

// StepBuilder provides a fluent API for building steps.
type StepBuilder struct {
	journey *Journey
	step    *Step
}

// SendKey adds a key press action.
func (b *StepBuilder) SendKey(key string) *StepBuilder {
	b.step.actions = append(b.step.actions, func(s *TUISession) {
		s.SendKey(key)
	})
	return b
}

// SendKeys adds multiple key press actions.
func (b *StepBuilder) SendKeys(keys ...string) *StepBuilder {
	b.step.actions = append(b.step.actions, func(s *TUISession) {
		s.SendKeys(keys...)
	})
	return b
}

// Type adds a typing action.
func (b *StepBuilder) Type(text string) *StepBuilder {
	b.step.actions = append(b.step.actions, func(s *TUISession) {
		s.Type(text)
	})
	return b
}

// Wait adds a pause.
func (b *StepBuilder) Wait(d time.Duration) *StepBuilder {
	b.step.actions = append(b.step.actions, func(s *TUISession) {
		s.Wait(d)
	})
	return b
}

// WaitFor adds a condition to wait for before assertions.
func (b *StepBuilder) WaitFor(condition func(*State) bool, timeout time.Duration) *StepBuilder {
	b.step.waitFor = condition
	b.step.waitTimeout = timeout
	return b
}

// ExpectMethod asserts the selected HTTP method.
func (b *StepBuilder) ExpectMethod(method string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if s.Method != method {
			t.Errorf("Expected method %q, got %q", method, s.Method)
		}
	})
	return b
}

// ExpectURL asserts the current URL.
func (b *StepBuilder) ExpectURL(url string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if s.URL != url {
			t.Errorf("Expected URL %q, got %q", url, s.URL)
		}
	})
	return b
}

// ExpectOptionsMode asserts the active options section.
func (b *StepBuilder) ExpectOptionsMode(mode string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if s.OptionsMode != mode {
			t.Errorf("Expected options mode %q, got %q", mode, s.OptionsMode)
		}
	})
	return b
}

// ExpectResponse asserts the exact response text.
func (b *StepBuilder) ExpectResponse(text string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if s.Response != text {
			t.Errorf("Expected response %q, got %q", text, s.Response)
		}
	})
	return b
}

// ExpectResponseContains asserts the response text contains a substring.
func (b *StepBuilder) ExpectResponseContains(sub string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if !strings.Contains(s.Response, sub) {
			t.Errorf("Expected response to contain %q, got %q", sub, s.Response)
		}
	})
	return b
}

// ExpectInFlight asserts the request dispatch state.
func (b *StepBuilder) ExpectInFlight(inFlight bool) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if s.InFlight != inFlight {
			t.Errorf("Expected InFlight=%v, got %v", inFlight, s.InFlight)
		}
	})
	return b
}

// ExpectNotificationContains asserts the status bar notification.
func (b *StepBuilder) ExpectNotificationContains(sub string) *StepBuilder {
	b.step.assertions = append(b.step.assertions, func(t *testing.T, s *State) {
		t.Helper()
		if !strings.Contains(s.Notification, sub) {
			t.Errorf("Expected notification to contain %q, got %q", sub, s.Notification)
		}
	})
	return b
}

// ExpectState adds a custom state assertion.
func (b *StepBuilder) ExpectState(assertion func(*testing.T, *State)) *StepBuilder {
	b.step.assertions = append(b.step.assertions, assertion)
	return b
}

// Step starts a new step (returns to journey to continue chaining).
func (b *StepBuilder) Step(name string) *StepBuilder {
	return b.journey.Step(name)
}

// Run executes the journey (terminal operation).
func (b *StepBuilder) Run() {
	b.journey.Run()
}
