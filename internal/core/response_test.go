package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/lazycurl/internal/interfaces"
)

func TestNewResponse(t *testing.T) {
	t.Run("creates response with status", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(200, "200 OK"))
		assert.NotEmpty(t, resp.ID())
		assert.Equal(t, "req-1", resp.RequestID())
		require.NotNil(t, resp.Status())
		assert.Equal(t, 200, resp.Status().Code())
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		resp1 := NewResponse("req-1", NewStatus(200, "200 OK"))
		resp2 := NewResponse("req-1", NewStatus(200, "200 OK"))
		assert.NotEqual(t, resp1.ID(), resp2.ID())
	})

	t.Run("starts with empty body and headers", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(204, "204 No Content"))
		assert.Empty(t, resp.Body())
		assert.Empty(t, resp.Text())
		assert.Zero(t, resp.Size())
		assert.Empty(t, resp.Headers().Keys())
	})
}

func TestResponse_Chaining(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(200, "200 OK")).
			WithBody([]byte("hello"))
		assert.Equal(t, "hello", resp.Text())
		assert.Equal(t, int64(5), resp.Size())
	})

	t.Run("with headers", func(t *testing.T) {
		h := NewHeaders()
		h.Set("Content-Type", "text/plain")
		resp := NewResponse("req-1", NewStatus(200, "200 OK")).WithHeaders(h)
		assert.Equal(t, "text/plain", resp.Headers().Get("Content-Type"))
	})

	t.Run("with timing", func(t *testing.T) {
		start := time.Now()
		end := start.Add(120 * time.Millisecond)
		resp := NewResponse("req-1", NewStatus(200, "200 OK")).
			WithTiming(interfaces.TimingInfo{StartTime: start, EndTime: end, Total: end.Sub(start)})
		assert.Equal(t, 120*time.Millisecond, resp.Timing().Total)
	})
}

func TestResponse_IsText(t *testing.T) {
	t.Run("valid UTF-8 body is text", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(200, "200 OK")).WithBody([]byte("héllo"))
		assert.True(t, resp.IsText())
	})

	t.Run("invalid UTF-8 body is not text", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(200, "200 OK")).WithBody([]byte{0xff, 0xfe, 0x01})
		assert.False(t, resp.IsText())
	})

	t.Run("empty body is text", func(t *testing.T) {
		resp := NewResponse("req-1", NewStatus(200, "200 OK"))
		assert.True(t, resp.IsText())
	})
}

func TestStatus(t *testing.T) {
	t.Run("success range", func(t *testing.T) {
		assert.True(t, NewStatus(200, "200 OK").IsSuccess())
		assert.True(t, NewStatus(299, "").IsSuccess())
		assert.False(t, NewStatus(300, "").IsSuccess())
		assert.False(t, NewStatus(199, "").IsSuccess())
	})

	t.Run("error range", func(t *testing.T) {
		assert.True(t, NewStatus(404, "404 Not Found").IsError())
		assert.True(t, NewStatus(500, "500 Internal Server Error").IsError())
		assert.False(t, NewStatus(302, "302 Found").IsError())
	})

	t.Run("accessors", func(t *testing.T) {
		s := NewStatus(418, "418 I'm a teapot")
		assert.Equal(t, 418, s.Code())
		assert.Equal(t, "418 I'm a teapot", s.Text())
	})
}
