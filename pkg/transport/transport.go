package transport

// Options modifies a single private API call.
type Options struct {
	// Login marks pre-authentication calls. They go out through the client
	// with the mobile TLS fingerprint and without the _uid/_uuid context.
	Login bool
	// Unsigned skips the signed_body envelope; some feed endpoints post a
	// raw JSON payload instead.
	Unsigned bool
	// Headers are set on top of the standard header set.
	Headers map[string]string
}

// Response is a decoded private API reply.
type Response struct {
	StatusCode int
	Status     string
	Body       map[string]interface{}
	Raw        []byte
}

// OK reports the server-side "status": "ok" marker.
func (r *Response) OK() bool {
	return r.Status == "ok"
}

// String reads a top-level string field from the body, "" when absent.
func (r *Response) String(key string) string {
	val, _ := r.Body[key].(string)
	return val
}

// Object reads a top-level object field from the body, nil when absent.
func (r *Response) Object(key string) map[string]interface{} {
	val, _ := r.Body[key].(map[string]interface{})
	return val
}

/*
Requester is the private API capability the session core consumes.

data may be a map[string]string (signed into the request envelope unless
opts.Unsigned is set), a pre-encoded string posted as-is, or nil for a GET.
Domain failures come back as the typed errors of this package.
*/
type Requester interface {
	Private(endpoint string, data interface{}, opts *Options) (*Response, error)
}

// Signer wraps a form payload in the envelope the server expects. The auth
// package provides the implementations.
type Signer interface {
	SignPayload(payload string) string
}
