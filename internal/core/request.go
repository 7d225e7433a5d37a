package core

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// supportedMethods is the fixed set of methods the client can issue,
// in the order they are presented by the selector.
var supportedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Methods returns the supported HTTP methods in display order.
func Methods() []string {
	result := make([]string, len(supportedMethods))
	copy(result, supportedMethods)
	return result
}

// IsSupportedMethod reports whether method is one of the supported
// tokens. Matching is case-sensitive: "get" is not a supported method.
func IsSupportedMethod(method string) bool {
	for _, m := range supportedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Request describes a single HTTP exchange to perform. The endpoint is
// carried verbatim; no validation happens before the transport sees it.
type Request struct {
	id       string
	method   string
	endpoint string
	headers  *Headers
	params   *Params
	body     string
	hasBody  bool
}

// NewRequest creates a request for the given method and endpoint.
func NewRequest(method, endpoint string) (*Request, error) {
	if method == "" {
		return nil, errors.New("method cannot be empty")
	}
	if endpoint == "" {
		return nil, errors.New("endpoint cannot be empty")
	}

	return &Request{
		id:       uuid.New().String(),
		method:   method,
		endpoint: endpoint,
		headers:  NewHeaders(),
		params:   NewParams(),
	}, nil
}

func (r *Request) ID() string {
	return r.id
}

func (r *Request) Method() string {
	return r.method
}

func (r *Request) Endpoint() string {
	return r.endpoint
}

func (r *Request) Headers() *Headers {
	return r.headers
}

func (r *Request) Params() *Params {
	return r.params
}

// Body returns the payload text. Meaningful only when HasBody is true.
func (r *Request) Body() string {
	return r.body
}

// HasBody reports whether a payload was attached. An attached empty
// string still counts as a payload and is sent as a zero-length body.
func (r *Request) HasBody() bool {
	return r.hasBody
}

// SetBody attaches body as the request payload, verbatim.
func (r *Request) SetBody(body string) {
	r.body = body
	r.hasBody = true
}

func (r *Request) SetHeader(key, value string) {
	r.headers.Set(key, value)
}

func (r *Request) Clone() *Request {
	return &Request{
		id:       uuid.New().String(),
		method:   r.method,
		endpoint: r.endpoint,
		headers:  r.headers.Clone(),
		params:   r.params.Clone(),
		body:     r.body,
		hasBody:  r.hasBody,
	}
}

func (r *Request) Validate() error {
	if r.method == "" {
		return errors.New("method cannot be empty")
	}
	if r.endpoint == "" {
		return errors.New("endpoint cannot be empty")
	}
	return nil
}

// Headers stores header pairs with case-insensitive lookup. Keys keep
// their first-seen casing and insertion order, so a request is always
// constructed with a deterministic header sequence.
type Headers struct {
	values map[string][]string
	order  []string
}

// NewHeaders creates an empty header set.
func NewHeaders() *Headers {
	return &Headers{values: make(map[string][]string)}
}

func (h *Headers) fold(key string) string {
	return strings.ToLower(key)
}

// Set replaces any existing values for key with value.
func (h *Headers) Set(key, value string) {
	folded := h.fold(key)
	if _, ok := h.values[folded]; !ok {
		h.order = append(h.order, key)
	}
	h.values[folded] = []string{value}
}

// Add appends value to the values recorded for key.
func (h *Headers) Add(key, value string) {
	folded := h.fold(key)
	if _, ok := h.values[folded]; !ok {
		h.order = append(h.order, key)
	}
	h.values[folded] = append(h.values[folded], value)
}

// Get returns the first value for key, or "" when absent.
func (h *Headers) Get(key string) string {
	if vs := h.values[h.fold(key)]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns a copy of all values recorded for key.
func (h *Headers) Values(key string) []string {
	vs := h.values[h.fold(key)]
	result := make([]string, len(vs))
	copy(result, vs)
	return result
}

// Del removes key and its values.
func (h *Headers) Del(key string) {
	folded := h.fold(key)
	if _, ok := h.values[folded]; !ok {
		return
	}
	delete(h.values, folded)
	for i, k := range h.order {
		if h.fold(k) == folded {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Keys returns the header names in insertion order.
func (h *Headers) Keys() []string {
	result := make([]string, len(h.order))
	copy(result, h.order)
	return result
}

func (h *Headers) Len() int {
	return len(h.order)
}

func (h *Headers) Clone() *Headers {
	clone := NewHeaders()
	for _, key := range h.order {
		for _, v := range h.values[h.fold(key)] {
			clone.Add(key, v)
		}
	}
	return clone
}

// Map returns the headers keyed by their original casing.
func (h *Headers) Map() map[string][]string {
	result := make(map[string][]string, len(h.order))
	for _, key := range h.order {
		vs := h.values[h.fold(key)]
		result[key] = make([]string, len(vs))
		copy(result[key], vs)
	}
	return result
}

// Params stores query parameters in insertion order. Unlike header
// names, parameter names are case-sensitive.
type Params struct {
	values map[string][]string
	order  []string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string][]string)}
}

// Set replaces any existing values for key with value.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.order = append(p.order, key)
	}
	p.values[key] = []string{value}
}

// Add appends value to the values recorded for key.
func (p *Params) Add(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.order = append(p.order, key)
	}
	p.values[key] = append(p.values[key], value)
}

// Get returns the first value for key, or "" when absent.
func (p *Params) Get(key string) string {
	if vs := p.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Del removes key and its values.
func (p *Params) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	result := make([]string, len(p.order))
	copy(result, p.order)
	return result
}

func (p *Params) Len() int {
	return len(p.order)
}

func (p *Params) Clone() *Params {
	clone := NewParams()
	for _, key := range p.order {
		for _, v := range p.values[key] {
			clone.Add(key, v)
		}
	}
	return clone
}

// Encode returns the parameters as a URL-encoded query string, keys in
// insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for _, key := range p.order {
		for _, v := range p.values[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
