package keyring

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const Service = "go-igapi"

type TokenType string

const (
	SessionID TokenType = "sessionid"
	CSRFToken TokenType = "csrftoken"
)

func keyFor(username string, tokenType TokenType) string {
	return fmt.Sprintf("%s/%s", username, tokenType)
}

func SaveToken(username string, tokenType TokenType, token string) error {
	return keyring.Set(Service, keyFor(username, tokenType), token)
}

func GetToken(username string, tokenType TokenType) (string, error) {
	return keyring.Get(Service, keyFor(username, tokenType))
}

func DeleteToken(username string, tokenType TokenType) error {
	return keyring.Delete(Service, keyFor(username, tokenType))
}

// GetSessionTokens returns the sessionid and csrftoken cookies persisted
// for the username.
func GetSessionTokens(username string) (sessionID string, csrfToken string, err error) {
	sessionID, err = GetToken(username, SessionID)
	if err != nil {
		return
	}
	csrfToken, err = GetToken(username, CSRFToken)
	return
}

// SaveSessionTokens persists both cookies after a successful login.
func SaveSessionTokens(username string, sessionID string, csrfToken string) error {
	if err := SaveToken(username, SessionID, sessionID); err != nil {
		return err
	}
	return SaveToken(username, CSRFToken, csrfToken)
}
