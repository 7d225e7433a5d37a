package journeys

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/artpar/lazycurl/e2e/harness"
	"github.com/artpar/lazycurl/e2e/testserver"
)

// TestFullWorkflow_CompleteSession walks one whole session:
// 1. Type a URL and send a GET
// 2. Verify the response body is displayed verbatim
// 3. Move the method to POST and send again
// 4. Flip through the options sections
// 5. Scroll a long response
// 6. Edit the URL and send to another path
// 7. Quit with Escape
func TestFullWorkflow_CompleteSession(t *testing.T) {
	handlers := testserver.Handlers{}

	var longBody strings.Builder
	for i := 0; i < 120; i++ {
		fmt.Fprintf(&longBody, "entry %03d\n", i)
	}

	server := testserver.New(map[string]http.HandlerFunc{
		"/first":  handlers.Text(200, "first response"),
		"/second": handlers.Text(200, "second response"),
		"/long":   handlers.Text(200, longBody.String()),
	})
	t.Cleanup(server.Close)

	h := harness.New(t, harness.Config{Timeout: 5 * time.Second})
	session := h.TUI().Start(t)
	defer session.Quit()

	t.Log("Step 1: Type URL and send")
	session.Type(server.URL + "/first")
	session.SendKey("enter")

	t.Log("Step 2: Verify response")
	state := session.State()
	if state.Response != "first response" {
		t.Fatalf("expected first response, got %q", state.Response)
	}
	if state.InFlight {
		t.Error("request should have completed")
	}

	t.Log("Step 3: Move to POST and resend")
	session.SendKey("down")
	session.SendKey("enter")

	if got := server.LastRequest(); got == nil || got.Method != "POST" {
		t.Fatalf("server should have seen a POST, got %+v", got)
	}
	if got := session.State().Method; got != "POST" {
		t.Errorf("method should still read POST, got %q", got)
	}

	t.Log("Step 4: Flip through options sections")
	for _, step := range []struct{ key, mode string }{
		{"B", "Body"}, {"P", "Params"}, {"H", "Headers"},
	} {
		session.SendKey(step.key)
		if got := session.State().OptionsMode; got != step.mode {
			t.Errorf("after %s expected %s, got %q", step.key, step.mode, got)
		}
	}

	t.Log("Step 5: Fetch and scroll a long response")
	for range server.URL + "/first" {
		session.SendKey("backspace")
	}
	session.Type(server.URL + "/long")
	session.SendKey("enter")

	if !strings.Contains(session.State().Response, "entry 000") {
		t.Fatalf("long response missing, got %q", session.State().Response)
	}
	session.SendKey("pgdown")
	if session.Model().ResponsePanel().ScrollOffset() == 0 {
		t.Error("page down should scroll the response")
	}
	session.SendKey("pgup")

	t.Log("Step 6: Edit the URL and send to another path")
	for range server.URL + "/long" {
		session.SendKey("backspace")
	}
	session.Type(server.URL + "/second")
	session.SendKey("enter")

	if got := session.State().Response; got != "second response" {
		t.Errorf("expected second response, got %q", got)
	}

	t.Log("Step 7: Quit")
	session.SendKey("esc")
	// Quitting tears the program down; the model itself just goes quiet.
}
