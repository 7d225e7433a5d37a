package tui_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/lazycurl/e2e/harness"
	"github.com/artpar/lazycurl/e2e/testserver"
)

func TestTUI_RequestWorkflow(t *testing.T) {
	handlers := testserver.Handlers{}

	server := testserver.New(map[string]http.HandlerFunc{
		"/api/test":   handlers.Text(200, `{"success":true,"message":"Hello from server"}`),
		"/api/echo":   handlers.Echo(),
		"/api/error":  handlers.Error(500, "Internal Server Error"),
		"/api/binary": handlers.Binary(200),
		"/api/slow":   handlers.Delayed(100*time.Millisecond, 200, "finally"),
	})
	t.Cleanup(server.Close)

	h := harness.New(t, harness.Config{Timeout: 5 * time.Second})

	t.Run("full GET flow with real HTTP", func(t *testing.T) {
		server.ClearRequests()
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type(server.URL + "/api/test")
		session.SendKey("enter")

		state := session.State()
		assert.False(t, state.InFlight)
		assert.Equal(t, `{"success":true,"message":"Hello from server"}`, state.Response)

		harness.NewAssertions(t).ResponseReceived(session.Output())

		req := server.LastRequest()
		require.NotNil(t, req)
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "/api/test", req.Path)
	})

	t.Run("each method reaches the server", func(t *testing.T) {
		downs := map[string]int{"GET": 0, "POST": 1, "PUT": 2, "DELETE": 3, "PATCH": 4}

		for method, presses := range downs {
			server.ClearRequests()
			session := h.TUI().Start(t)

			for i := 0; i < presses; i++ {
				session.SendKey("down")
			}
			session.Type(server.URL + "/api/echo")
			session.SendKey("enter")

			req := server.LastRequest()
			require.NotNil(t, req, "%s never reached the server", method)
			assert.Equal(t, method, req.Method)

			session.Quit()
		}
	})

	t.Run("non-GET requests carry an empty body verbatim", func(t *testing.T) {
		server.ClearRequests()
		session := h.TUI().Start(t)
		defer session.Quit()

		session.SendKey("down") // POST
		session.Type(server.URL + "/api/echo")
		session.SendKey("enter")

		req := server.LastRequest()
		require.NotNil(t, req)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "", string(req.Body))
	})

	t.Run("server errors display like any response", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type(server.URL + "/api/error")
		session.SendKey("enter")

		// The body displays verbatim with no status decoration, so a 500
		// reads exactly like a success.
		state := session.State()
		assert.Equal(t, "{\"error\":\"Internal Server Error\"}\n", state.Response)
	})

	t.Run("binary responses fail as text", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type(server.URL + "/api/binary")
		session.SendKey("enter")

		assert.Equal(t, "Failed to make request", session.State().Response)
	})

	t.Run("connection refused fails the same way", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type("http://127.0.0.1:1/unreachable")
		session.SendKey("enter")

		assert.Equal(t, "Failed to make request", session.State().Response)
	})

	t.Run("slow responses still complete", func(t *testing.T) {
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type(server.URL + "/api/slow")
		session.SendKey("enter")

		assert.Equal(t, "finally", session.State().Response)
	})

	t.Run("requests can be sent back to back", func(t *testing.T) {
		server.ClearRequests()
		session := h.TUI().Start(t)
		defer session.Quit()

		session.Type(server.URL + "/api/test")
		session.SendKey("enter")
		session.SendKey("enter")

		assert.Equal(t, 2, server.RequestCount())
		assert.False(t, session.State().InFlight)
	})

	t.Run("empty URL never reaches the server", func(t *testing.T) {
		server.ClearRequests()
		session := h.TUI().Start(t)
		defer session.Quit()

		session.SendKey("enter")

		assert.Equal(t, 0, server.RequestCount())
		state := session.State()
		assert.NotEmpty(t, state.Notification)
		assert.Equal(t, "Response will appear here...", state.Response)
	})
}
