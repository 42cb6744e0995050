package auth

import (
	"testing"
)

const testPayload = `{"username":"example","enc_password":"secret"}`

func TestSignPayloadCurrent(t *testing.T) {
	signed := NewSigner().SignPayload(testPayload)

	const expected = "signed_body=SIGNATURE." +
		"%7B%22username%22%3A%22example%22%2C%22enc_password%22%3A%22secret%22%7D"
	if signed != expected {
		t.Fatalf("signed payload mismatch: %s", signed)
	}
}

func TestSignPayloadLegacy(t *testing.T) {
	signer := NewSigner()
	signer.Mode = SignModeLegacy

	signed := signer.SignPayload(testPayload)

	const expected = "signed_body=" +
		"8c793a72b6df1740017c4912514a139f45f4c03b33476f7821007e5f6ac539db." +
		"%7B%22username%22%3A%22example%22%2C%22enc_password%22%3A%22secret%22%7D" +
		"&ig_sig_key_version=4"
	if signed != expected {
		t.Fatalf("legacy signed payload mismatch: %s", signed)
	}
}

// The legacy envelope percent-encodes spaces and keeps slashes literal,
// while the current envelope form-encodes both.
func TestSignPayloadEscaping(t *testing.T) {
	const payload = `{"device":"MI 5s","path":"a/b"}`

	signer := NewSigner()
	signer.Mode = SignModeLegacy

	const expectedLegacy = "signed_body=" +
		"799ef1b4404034d1d246a4907ce0120587142a7f4c107de25c64e93af9580c89." +
		"%7B%22device%22%3A%22MI%205s%22%2C%22path%22%3A%22a/b%22%7D" +
		"&ig_sig_key_version=4"
	if signed := signer.SignPayload(payload); signed != expectedLegacy {
		t.Fatalf("legacy escaping mismatch: %s", signed)
	}

	const expectedCurrent = "signed_body=SIGNATURE." +
		"%7B%22device%22%3A%22MI+5s%22%2C%22path%22%3A%22a%2Fb%22%7D"
	if signed := NewSigner().SignPayload(payload); signed != expectedCurrent {
		t.Fatalf("current escaping mismatch: %s", signed)
	}
}
