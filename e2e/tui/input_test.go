package tui_test

import (
	"strings"
	"testing"

	"github.com/artpar/lazycurl/e2e/harness"
)

// TestInput_URLTyping verifies that the URL bar accepts whatever is typed.
func TestInput_URLTyping(t *testing.T) {
	h := harness.New(t, harness.Config{})

	t.Run("plain URL", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type("http://example.com/path")

		if got := session.State().URL; got != "http://example.com/path" {
			t.Errorf("URL mismatch: %q", got)
		}
		if !strings.Contains(session.Output(), "http://example.com/path") {
			t.Error("URL not showing in output")
		}
	})

	t.Run("space in URL field", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		// URLs shouldn't have unencoded spaces, but the input accepts them
		session.Type("http://example.com/path")
		session.SendKey("space")
		session.Type("with spaces")

		if got := session.State().URL; got != "http://example.com/path with spaces" {
			t.Errorf("URL mismatch: %q", got)
		}
	})

	t.Run("no validation while typing", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type("definitely not a url !!!")

		if got := session.State().URL; got != "definitely not a url !!!" {
			t.Errorf("URL mismatch: %q", got)
		}
	})
}

// TestInput_DeleteOperations tests backspace behavior.
func TestInput_DeleteOperations(t *testing.T) {
	h := harness.New(t, harness.Config{})

	t.Run("backspace removes the last character", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type("https://example.comm") // Typo
		session.SendKey("backspace")         // Remove extra m

		if got := session.State().URL; got != "https://example.com" {
			t.Errorf("URL after backspace: %q", got)
		}
	})

	t.Run("backspace on empty URL is safe", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.SendKeys("backspace", "backspace")

		if got := session.State().URL; got != "" {
			t.Errorf("expected empty URL, got %q", got)
		}
	})
}

// TestInput_OptionsModes tests the H/B/P view mode switches.
func TestInput_OptionsModes(t *testing.T) {
	h := harness.New(t, harness.Config{})

	t.Run("uppercase letters switch the section", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		if got := session.State().OptionsMode; got != "Headers" {
			t.Fatalf("expected to start on Headers, got %q", got)
		}

		session.SendKey("B")
		if got := session.State().OptionsMode; got != "Body" {
			t.Errorf("expected Body, got %q", got)
		}

		session.SendKey("P")
		if got := session.State().OptionsMode; got != "Params" {
			t.Errorf("expected Params, got %q", got)
		}

		session.SendKey("H")
		if got := session.State().OptionsMode; got != "Headers" {
			t.Errorf("expected Headers, got %q", got)
		}
	})

	t.Run("section keys do not leak into the URL", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.SendKeys("H", "B", "P")

		if got := session.State().URL; got != "" {
			t.Errorf("expected empty URL, got %q", got)
		}
	})

	t.Run("lowercase letters are URL text", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type("hbp")

		state := session.State()
		if state.URL != "hbp" {
			t.Errorf("expected URL %q, got %q", "hbp", state.URL)
		}
		if state.OptionsMode != "Headers" {
			t.Errorf("mode should not have moved, got %q", state.OptionsMode)
		}
	})

	t.Run("sections render their empty state", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		assert := harness.NewAssertions(t)
		assert.OutputContains(session.Output(), "No headers defined")

		session.SendKey("B")
		assert.OutputContains(session.Output(), "No body defined")

		session.SendKey("P")
		assert.OutputContains(session.Output(), "No params defined")
	})
}
