package http

import (
	"context"
	"sort"

	"github.com/artpar/lazycurl/internal/core"
	"github.com/artpar/lazycurl/internal/interfaces"
)

// Sentinel strings shown in place of a response when an exchange cannot
// produce one. They are display values, not errors; the session treats
// them exactly like a successful response body.
const (
	InvalidMethodText = "Invalid Method"
	RequestFailedText = "Failed to make request"
)

// Executor reduces one HTTP exchange to a displayable string, per the
// interfaces.Executor contract.
type Executor struct {
	client *Client
}

var _ interfaces.Executor = (*Executor)(nil)

// NewExecutor creates an executor backed by client. A nil client gets
// the default configuration.
func NewExecutor(client *Client) *Executor {
	if client == nil {
		client = NewClient()
	}
	return &Executor{client: client}
}

// Execute performs one exchange. An unrecognized method is rejected
// locally with no network activity. The body is attached verbatim for
// every method except GET, even when empty. Any transport failure, read
// failure, or non-text payload collapses to RequestFailedText; otherwise
// the response body is returned as text regardless of HTTP status.
func (e *Executor) Execute(ctx context.Context, method, url string, headers map[string]string, body string) string {
	if !core.IsSupportedMethod(method) {
		return InvalidMethodText
	}

	req, err := core.NewRequest(method, url)
	if err != nil {
		return RequestFailedText
	}

	// The header mapping has no iteration order; sort so the outgoing
	// request is always built the same way.
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		req.SetHeader(key, headers[key])
	}

	if method != "GET" {
		req.SetBody(body)
	}

	resp, err := e.client.Send(ctx, req)
	if err != nil {
		return RequestFailedText
	}
	if !resp.IsText() {
		return RequestFailedText
	}

	return resp.Text()
}
