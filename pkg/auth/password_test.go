package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/binary"
	"encoding/pem"
	"strings"
	"testing"
	"time"
)

// Encrypts with a test key and opens the envelope with the matching private
// key, which checks every field the server would: version tag, key id, the
// RSA-sealed session key and the GCM tag over the timestamp.
func TestPasswordEncryptionRoundTrip(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	loginTime := time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)
	encrypter := &PasswordEncrypter{
		PubKeyID: 205,
		PubKey:   base64.StdEncoding.EncodeToString(pubPEM),
		now:      func() time.Time { return loginTime },
	}

	envelope, err := encrypter.EncryptPassword("pass123")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 4 || parts[0] != "#PWD_INSTAGRAM" || parts[1] != "4" {
		t.Fatalf("unexpected envelope framing: %s", envelope)
	}
	if parts[2] != "1615734566" {
		t.Fatalf("timestamp should be the submission time, was %s", parts[2])
	}

	blob, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		t.Fatal(err)
	}

	if blob[0] != 0x01 {
		t.Fatalf("envelope version byte should be 0x01, was %#x", blob[0])
	}
	if blob[1] != 205 {
		t.Fatalf("envelope key id should be 205, was %d", blob[1])
	}

	iv := blob[2:14]
	keyLen := int(binary.LittleEndian.Uint16(blob[14:16]))
	if keyLen != 256 {
		t.Fatalf("sealed key length should be 256 for a 2048 bit key, was %d", keyLen)
	}

	sealedKey := blob[16 : 16+keyLen]
	rest := blob[16+keyLen:]

	sessionKey, err := rsa.DecryptPKCS1v15(nil, privKey, sealedKey)
	if err != nil {
		t.Fatal(err)
	}

	blockCipher, err := aes.NewCipher(sessionKey)
	if err != nil {
		t.Fatal(err)
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		t.Fatal(err)
	}

	// tag precedes the ciphertext in the envelope, gcm.Open expects it after
	tag := rest[:gcm.Overhead()]
	ciphertext := rest[gcm.Overhead():]

	password, err := gcm.Open(nil, iv, append(append([]byte{}, ciphertext...), tag...), []byte(parts[2]))
	if err != nil {
		t.Fatal(err)
	}

	if string(password) != "pass123" {
		t.Fatalf("decrypted password mismatch: %s", string(password))
	}
}

func TestPasswordEncryptionRejectsBadKey(t *testing.T) {
	encrypter := &PasswordEncrypter{PubKeyID: 205, PubKey: "bm90IGEga2V5"}
	if _, err := encrypter.EncryptPassword("pass123"); err == nil {
		t.Fatal("a non-PEM key should be rejected")
	}
}
