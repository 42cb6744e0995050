package session

import (
	"fmt"
	"strconv"
)

// The accessors below derive values from the cookie jar on every call. They
// never invent state: a session counts as logged in only once the server
// has set a numeric ds_user_id cookie.

// Token returns the csrftoken cookie.
func (sess *Session) Token() string {
	return sess.CookieValue("csrftoken")
}

func (sess *Session) SessionID() string {
	return sess.CookieValue("sessionid")
}

func (sess *Session) Mid() string {
	return sess.CookieValue("mid")
}

// UserID parses the ds_user_id cookie, returning 0 when it is absent or not
// numeric.
func (sess *Session) UserID() int64 {
	raw := sess.CookieValue("ds_user_id")
	if raw == "" {
		return 0
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return userID
}

func (sess *Session) LoggedIn() bool {
	return sess.UserID() != 0
}

// RankToken is the correlation key ranking-sensitive endpoints expect.
func (sess *Session) RankToken() string {
	userID := sess.UserID()
	if userID == 0 {
		return ""
	}
	return fmt.Sprintf("%d_%s", userID, sess.uuids.UUID)
}

// Device returns the device descriptor subset some endpoints expect as a
// payload field, nil when no device is installed yet.
func (sess *Session) Device() map[string]interface{} {
	if sess.deviceSettings == nil {
		return nil
	}
	return sess.deviceSettings.Subset()
}

// InjectSessionIDToPublic copies the private sessionid into the public
// cookie scope so unauthenticated-looking endpoints ride the authenticated
// session. Reports false when there is no session id yet.
func (sess *Session) InjectSessionIDToPublic() bool {
	sessionID := sess.SessionID()
	if sessionID == "" {
		return false
	}
	sess.publicCookies["sessionid"] = sessionID
	return true
}
