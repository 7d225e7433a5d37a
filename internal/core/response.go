package core

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/artpar/lazycurl/internal/interfaces"
)

// Response holds the outcome of one HTTP exchange.
type Response struct {
	id        string
	requestID string
	status    *Status
	headers   *Headers
	body      []byte
	timing    interfaces.TimingInfo
}

// NewResponse creates a response for the request identified by requestID.
func NewResponse(requestID string, status *Status) *Response {
	return &Response{
		id:        uuid.New().String(),
		requestID: requestID,
		status:    status,
		headers:   NewHeaders(),
	}
}

func (r *Response) ID() string {
	return r.id
}

func (r *Response) RequestID() string {
	return r.requestID
}

func (r *Response) Status() *Status {
	return r.status
}

func (r *Response) Headers() *Headers {
	return r.headers
}

// Body returns the raw response payload.
func (r *Response) Body() []byte {
	return r.body
}

// Text returns the payload decoded as text.
func (r *Response) Text() string {
	return string(r.body)
}

// IsText reports whether the payload is valid UTF-8.
func (r *Response) IsText() bool {
	return utf8.Valid(r.body)
}

func (r *Response) Size() int64 {
	return int64(len(r.body))
}

func (r *Response) Timing() interfaces.TimingInfo {
	return r.timing
}

// WithHeaders sets the response headers and returns the response for chaining.
func (r *Response) WithHeaders(h *Headers) *Response {
	r.headers = h
	return r
}

// WithBody sets the response payload and returns the response for chaining.
func (r *Response) WithBody(body []byte) *Response {
	r.body = body
	return r
}

// WithTiming sets the timing info and returns the response for chaining.
func (r *Response) WithTiming(t interfaces.TimingInfo) *Response {
	r.timing = t
	return r
}

// Status represents an HTTP status code and text.
type Status struct {
	code int
	text string
}

// NewStatus creates a new status.
func NewStatus(code int, text string) *Status {
	return &Status{code: code, text: text}
}

func (s *Status) Code() int    { return s.code }
func (s *Status) Text() string { return s.text }

func (s *Status) IsSuccess() bool {
	return s.code >= 200 && s.code < 300
}

func (s *Status) IsError() bool {
	return s.code >= 400
}
