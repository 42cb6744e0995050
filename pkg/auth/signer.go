package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/jarijaas/go-igapi/pkg/common"
)

type SignMode int

const (
	// SignModeCurrent emits the literal SIGNATURE placeholder the server
	// accepts today.
	SignModeCurrent SignMode = iota
	// SignModeLegacy computes the real HMAC digest, kept as a drop-in
	// fallback should the server start verifying again.
	SignModeLegacy
)

// Signer wraps outgoing form payloads in the signed_body envelope. Which
// mode is correct at any given time is a protocol-compatibility question
// the caller answers, not this type.
type Signer struct {
	Mode       SignMode
	Key        string
	KeyVersion string
}

func NewSigner() *Signer {
	return &Signer{
		Mode:       SignModeCurrent,
		Key:        common.SigKey,
		KeyVersion: common.SigKeyVersion,
	}
}

// SignPayload wraps the payload according to the configured mode. Both
// modes take the same input and return a form string ready for a POST body.
func (s *Signer) SignPayload(payload string) string {
	if s.Mode == SignModeLegacy {
		return s.signLegacy(payload)
	}
	return fmt.Sprintf("signed_body=SIGNATURE.%s", url.QueryEscape(payload))
}

func (s *Signer) signLegacy(payload string) string {
	mac := hmac.New(sha256.New, []byte(s.Key))
	mac.Write([]byte(payload))
	digest := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("signed_body=%s.%s&ig_sig_key_version=%s",
		digest, pathEscape(payload), s.KeyVersion)
}

// pathEscape percent-encodes the legacy payload: spaces as %20 and slashes
// kept literal, unlike the form encoding of the current envelope.
func pathEscape(payload string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(payload), "+", "%20")
	return strings.ReplaceAll(escaped, "%2F", "/")
}
