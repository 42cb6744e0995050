package auth

import (
	"fmt"

	"github.com/jarijaas/go-igapi/pkg/transport"
)

// ReloginAttemptExceeded is raised before any network call once the relogin
// budget for this client's lifetime is spent. The counter never resets;
// construct a new client to start over.
type ReloginAttemptExceeded struct {
	Attempts int
}

func (e *ReloginAttemptExceeded) Error() string {
	return fmt.Sprintf("relogin attempt limit exceeded after %d attempts, create a new client to retry", e.Attempts)
}

// MissingVerificationCode means the server demanded a two-factor code and
// none was supplied to Login.
type MissingVerificationCode struct {
	Cause *transport.TwoFactorRequired
}

func (e *MissingVerificationCode) Error() string {
	return fmt.Sprintf("two factor authentication required: %v (you did not provide a verification_code for the login method)", &e.Cause.PrivateError)
}

func (e *MissingVerificationCode) Unwrap() error {
	return e.Cause
}

// LoginNotAcknowledged means the submission went through but the server
// answered without the ok status marker, leaving the login unconfirmed.
type LoginNotAcknowledged struct {
	Status string
}

func (e *LoginNotAcknowledged) Error() string {
	if e.Status == "" {
		return "login submission was not acknowledged"
	}
	return fmt.Sprintf("login submission was not acknowledged (status %q)", e.Status)
}

// InvalidSessionID reports a malformed sessionid passed to LoginBySessionID.
type InvalidSessionID struct {
	Reason string
}

func (e *InvalidSessionID) Error() string {
	return fmt.Sprintf("invalid sessionid: %s", e.Reason)
}
