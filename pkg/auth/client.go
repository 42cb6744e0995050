package auth

// Based on https://github.com/subzeroid/instagrapi (mobile login flow)

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/jarijaas/go-igapi/pkg/keyring"
	"github.com/jarijaas/go-igapi/pkg/session"
	"github.com/jarijaas/go-igapi/pkg/transport"
	log "github.com/sirupsen/logrus"
)

// loginState tags where a login attempt currently stands. Transitions are
// driven by the small step methods below so each can be exercised against a
// fake transport.
type loginState int

const (
	stateAnonymous loginState = iota
	statePreLoginDone
	stateCredentialsSubmitted
	stateTwoFactorPending
	stateAuthenticated
	stateFailed
)

func (s loginState) String() string {
	switch s {
	case stateAnonymous:
		return "anonymous"
	case statePreLoginDone:
		return "pre-login-done"
	case stateCredentialsSubmitted:
		return "credentials-submitted"
	case stateTwoFactorPending:
		return "two-factor-pending"
	case stateAuthenticated:
		return "authenticated"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

/*
Client drives the login lifecycle over a session: pre-login emulation,
credential submission, the optional two-factor branch and the post-login
emulation. One client owns one session; it is not safe for concurrent use.
*/
type Client struct {
	config *Config

	sess      *session.Session
	transport transport.Requester
	encrypter Encrypter
	rnd       *rand.Rand

	username string
	password string

	state          loginState
	reloginAttempt int
	postLoginOK    bool
}

type Config struct {
	Username         string
	Password         string
	VerificationCode string

	// Session to drive; a fresh one with the reference device is created
	// when nil.
	Session *session.Session
	// Transport overrides the HTTP client, used by tests.
	Transport transport.Requester
	// Encrypter overrides password encryption.
	Encrypter Encrypter
	// Rand pins the randomness of the emulation flows.
	Rand *rand.Rand
	// SkipKeyring disables restoring persisted cookies from the OS keyring.
	SkipKeyring bool
}

func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = &Config{}
	}

	sess := config.Session
	if sess == nil {
		sess = session.New()
	}
	if sess.DeviceSettings() == nil {
		if err := sess.SetDevice(nil); err != nil {
			return nil, err
		}
	}
	if sess.UserAgent() == "" {
		sess.SetUserAgent("")
	}

	// No cookies yet: maybe a previous run left a session in the keyring.
	if !config.SkipKeyring && config.Username != "" && sess.SessionID() == "" {
		sessionID, csrfToken, err := keyring.GetSessionTokens(config.Username)
		if err == nil && sessionID != "" {
			log.Tracef("Found persisted session cookies for %s in keyring", config.Username)
			sess.SetCookie("sessionid", sessionID)
			sess.SetCookie("csrftoken", csrfToken)
		}
	}

	tr := config.Transport
	if tr == nil {
		tr = transport.NewHTTPClient(sess, NewSigner())
	}

	enc := config.Encrypter
	if enc == nil {
		enc = NewPasswordEncrypter()
	}

	rnd := config.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Client{
		config:    config,
		sess:      sess,
		transport: tr,
		encrypter: enc,
		rnd:       rnd,
		username:  config.Username,
		password:  config.Password,
		state:     stateAnonymous,
	}, nil
}

func (client *Client) Session() *session.Session {
	return client.sess
}

// PostLoginOK reports whether the post-login emulation calls of the last
// successful login all went through. Login success does not depend on it.
func (client *Client) PostLoginOK() bool {
	return client.postLoginOK
}

// Login authenticates with the given credentials.
func (client *Client) Login(username, password string) error {
	return client.login(username, password, false, client.config.VerificationCode)
}

// LoginWithCode authenticates and answers a two-factor challenge with the
// given verification code.
func (client *Client) LoginWithCode(username, password, verificationCode string) error {
	return client.login(username, password, false, verificationCode)
}

// Relogin clears the session cookies and authenticates again with the
// previous credentials. Bounded: after two attempts on the same client any
// further call fails without touching the network.
func (client *Client) Relogin() error {
	return client.login(client.username, client.password, true, client.config.VerificationCode)
}

func (client *Client) login(username, password string, relogin bool, verificationCode string) error {
	client.username = username
	client.password = password
	client.sess.SetUsername(username)
	client.state = stateAnonymous

	if relogin {
		client.sess.ClearCookies()
		if client.reloginAttempt > 1 {
			client.state = stateFailed
			return &ReloginAttemptExceeded{Attempts: client.reloginAttempt}
		}
		client.reloginAttempt++
	}

	// Entry guard: a numeric ds_user_id cookie means we already hold an
	// authenticated session, nothing to do.
	if client.sess.LoggedIn() {
		client.state = stateAuthenticated
		return nil
	}

	if err := client.runPreLogin(); err != nil {
		client.state = stateFailed
		return err
	}

	resp, err := client.submitCredentials()
	if err != nil {
		var twoFactor *transport.TwoFactorRequired
		if !errors.As(err, &twoFactor) {
			client.state = stateFailed
			return err
		}

		client.state = stateTwoFactorPending
		resp, err = client.submitTwoFactor(twoFactor, verificationCode)
		if err != nil {
			client.state = stateFailed
			return err
		}
	}

	return client.finishLogin(resp)
}

// runPreLogin transitions anonymous → pre-login-done. A rate limit in this
// phase is swallowed: the app ignores it and submits credentials anyway.
// This asymmetry is deliberate and applies to the rate limit only; any
// other failure aborts the attempt before credentials go out.
func (client *Client) runPreLogin() error {
	err := client.preLoginFlow()

	var wait *transport.PleaseWaitFewMinutes
	if errors.As(err, &wait) {
		log.Warnf("pre-login emulation was rate limited, continuing: %v", err)
		err = nil
	}
	if err != nil {
		return err
	}

	client.state = statePreLoginDone
	return nil
}

func (client *Client) submitCredentials() (*transport.Response, error) {
	encPassword, err := client.encrypter.EncryptPassword(client.password)
	if err != nil {
		return nil, err
	}

	uuids := client.sess.UUIDs()
	data := map[string]string{
		"jazoest":             GenerateJazoest(uuids.PhoneID),
		"phone_id":            uuids.PhoneID,
		"enc_password":        encPassword,
		"username":            client.username,
		"adid":                uuids.AdvertisingID,
		"guid":                uuids.UUID,
		"device_id":           uuids.DeviceID,
		"google_tokens":       "[]",
		"login_attempt_count": "0",
	}

	client.state = stateCredentialsSubmitted
	return client.transport.Private("accounts/login/", data, &transport.Options{Login: true})
}

// submitTwoFactor answers the challenge carried by the failed submission.
// Its result supersedes the original submission's result.
func (client *Client) submitTwoFactor(challenge *transport.TwoFactorRequired, verificationCode string) (*transport.Response, error) {
	if strings.TrimSpace(verificationCode) == "" {
		return nil, &MissingVerificationCode{Cause: challenge}
	}

	uuids := client.sess.UUIDs()
	data := map[string]string{
		"verification_code":     verificationCode,
		"phone_id":              uuids.PhoneID,
		"_csrftoken":            client.sess.Token(),
		"two_factor_identifier": challenge.Identifier(),
		"username":              client.username,
		"trust_this_device":     "0",
		"guid":                  uuids.UUID,
		"device_id":             uuids.DeviceID,
		"waterfall_id":          session.GenerateUUID(),
		"verification_method":   "3",
	}
	return client.transport.Private("accounts/two_factor_login/", data, &transport.Options{Login: true})
}

func (client *Client) finishLogin(resp *transport.Response) error {
	if resp == nil || !resp.OK() {
		client.state = stateFailed
		status := ""
		if resp != nil {
			status = resp.Status
		}
		return &LoginNotAcknowledged{Status: status}
	}

	client.postLoginOK = client.loginFlow()
	if !client.postLoginOK {
		log.Warnf("post-login emulation reported failures, session stays authenticated")
	}

	client.sess.StampLastLogin()
	client.state = stateAuthenticated

	client.persistToKeyring()
	return nil
}

func (client *Client) persistToKeyring() {
	if client.config.SkipKeyring || client.username == "" || client.sess.SessionID() == "" {
		return
	}
	if err := keyring.SaveSessionTokens(client.username, client.sess.SessionID(), client.sess.Token()); err != nil {
		log.Warnf("could not persist session cookies to keyring: %v", err)
	}
}

var leadingUserID = regexp.MustCompile(`^\d+`)

// LoginBySessionID seeds the session from a raw sessionid cookie and
// resolves the account it belongs to.
func (client *Client) LoginBySessionID(sessionID string) error {
	if len(sessionID) <= 30 {
		return &InvalidSessionID{Reason: "too short"}
	}

	userID := leadingUserID.FindString(sessionID)
	if userID == "" {
		return &InvalidSessionID{Reason: "does not start with a numeric user id"}
	}

	if err := client.sess.SetSettings(&session.Settings{
		Cookies: map[string]string{"sessionid": sessionID},
	}); err != nil {
		return err
	}

	resp, err := client.transport.Private(fmt.Sprintf("users/%s/info/", userID), nil, nil)
	if err != nil {
		return err
	}

	user := resp.Object("user")
	if username, ok := user["username"].(string); ok {
		client.username = username
		client.sess.SetUsername(username)
	}

	client.sess.SetCookie("ds_user_id", userID)
	client.state = stateAuthenticated
	return nil
}
