package harness

import (
	"strings"
	"testing"
)

// Assertions provides E2E-specific assertions.
type Assertions struct {
	t *testing.T
}

// NewAssertions creates an assertions helper.
func NewAssertions(t *testing.T) *Assertions {
	return &Assertions{t: t}
}

// OutputContains asserts the output contains all given strings.
func (a *Assertions) OutputContains(output string, expected ...string) {
	a.t.Helper()
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			a.t.Errorf("expected output to contain %q, got:\n%s", exp, truncate(output, 500))
		}
	}
}

// OutputNotContains asserts the output does not contain any of the given strings.
func (a *Assertions) OutputNotContains(output string, unexpected ...string) {
	a.t.Helper()
	for _, unexp := range unexpected {
		if strings.Contains(output, unexp) {
			a.t.Errorf("expected output NOT to contain %q, got:\n%s", unexp, truncate(output, 500))
		}
	}
}

// PaneVisible asserts a pane label is visible in the output.
func (a *Assertions) PaneVisible(output string, paneName string) {
	a.t.Helper()
	if !strings.Contains(output, paneName) {
		a.t.Errorf("expected pane %q to be visible in output:\n%s", paneName, truncate(output, 500))
	}
}

// NoCrash asserts the output doesn't contain panic indicators. Response
// bodies display verbatim, so "error" by itself proves nothing here.
func (a *Assertions) NoCrash(output string) {
	a.t.Helper()
	indicators := []string{"panic:", "PANIC:"}
	for _, ind := range indicators {
		if strings.Contains(output, ind) {
			a.t.Errorf("unexpected crash indicator %q in:\n%s", ind, truncate(output, 500))
			return
		}
	}
}

// ResponseReceived asserts a response was received (placeholder replaced).
func (a *Assertions) ResponseReceived(output string) {
	a.t.Helper()
	if strings.Contains(output, "Response will appear here...") {
		a.t.Errorf("no response received yet")
	}
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "... (truncated)"
}
