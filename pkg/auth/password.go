package auth

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/binary"
	"encoding/pem"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jarijaas/go-igapi/pkg/common"
)

// Encrypter seals a plaintext password into the envelope the login
// endpoint expects.
type Encrypter interface {
	EncryptPassword(password string) (string, error)
}

/*
PasswordEncrypter implements the #PWD_INSTAGRAM envelope: a random AES-256
session key sealed with the published RSA key, the password encrypted under
AES-GCM with the submission timestamp as additional data.

The key id and key normally come from the ig-set-password-encryption-*
response headers; the bundled defaults match the reference app version.
If randSrc is nil, uses crypto/rand.Reader.
*/
type PasswordEncrypter struct {
	PubKeyID int
	PubKey   string // base64-encoded PEM

	randSrc io.Reader
	now     func() time.Time
}

func NewPasswordEncrypter() *PasswordEncrypter {
	return &PasswordEncrypter{
		PubKeyID: common.PasswordPubKeyID,
		PubKey:   common.PasswordPubKey,
		randSrc:  rand.Reader,
		now:      time.Now,
	}
}

func (e *PasswordEncrypter) parsePubKey() (*rsa.PublicKey, error) {
	pemData, err := base64.StdEncoding.DecodeString(e.PubKey)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("password encryption key is not PEM")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("password encryption key is not RSA")
	}
	return rsaPub, nil
}

func (e *PasswordEncrypter) EncryptPassword(password string) (string, error) {
	rsaPub, err := e.parsePubKey()
	if err != nil {
		return "", err
	}

	randSrc := e.randSrc
	if randSrc == nil {
		randSrc = rand.Reader
	}

	sessionKey := make([]byte, 32)
	if _, err := io.ReadFull(randSrc, sessionKey); err != nil {
		return "", err
	}
	iv := make([]byte, 12)
	if _, err := io.ReadFull(randSrc, iv); err != nil {
		return "", err
	}

	timestamp := strconv.FormatInt(e.now().Unix(), 10)

	sealedKey, err := rsa.EncryptPKCS1v15(randSrc, rsaPub, sessionKey)
	if err != nil {
		return "", err
	}

	blockCipher, err := aes.NewCipher(sessionKey)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, iv, []byte(password), []byte(timestamp))
	tag := sealed[len(sealed)-gcm.Overhead():]
	ciphertext := sealed[:len(sealed)-gcm.Overhead()]

	buf := &bytes.Buffer{}
	buf.WriteByte(0x01)
	buf.WriteByte(byte(e.PubKeyID))
	buf.Write(iv)

	keyLen := make([]byte, 2)
	binary.LittleEndian.PutUint16(keyLen, uint16(len(sealedKey)))
	buf.Write(keyLen)
	buf.Write(sealedKey)
	buf.Write(tag)
	buf.Write(ciphertext)

	return fmt.Sprintf("#PWD_INSTAGRAM:4:%s:%s",
		timestamp, base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
