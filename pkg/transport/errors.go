package transport

import "fmt"

// PrivateError is the base failure type for private API calls. The raw
// decoded body is kept so callers can inspect fields the typed wrappers do
// not surface.
type PrivateError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Message    string
	Body       map[string]interface{}
}

func (e *PrivateError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed (status %d)", e.Endpoint, e.StatusCode)
}

// PleaseWaitFewMinutes is the server-side rate limit signal. The mobile app
// ignores it during the pre-login phase and so does the login flow.
type PleaseWaitFewMinutes struct {
	PrivateError
}

// TwoFactorRequired reports that credential submission must be completed
// with a verification code. Info carries the server's two_factor_info
// payload, including the identifier the second call needs.
type TwoFactorRequired struct {
	PrivateError
	Info map[string]interface{}
}

// Identifier extracts the two_factor_identifier, "" when missing.
func (e *TwoFactorRequired) Identifier() string {
	if id, ok := e.Info["two_factor_identifier"].(string); ok {
		return id
	}
	return ""
}

// BadCredentials covers bad_password and invalid_user responses.
type BadCredentials struct {
	PrivateError
}

// ChallengeRequired means the account was flagged for a checkpoint
// challenge, which this client does not resolve.
type ChallengeRequired struct {
	PrivateError
}
