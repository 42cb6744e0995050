package session

import (
	"time"

	"github.com/jarijaas/go-igapi/pkg/device"
	log "github.com/sirupsen/logrus"
)

/*
Session owns everything the server associates with one logged-in device:
the cookie jar, the identifier set, the device settings and the user agent.

A Session is not safe for concurrent use. One session means one sequential
caller; run independent sessions for parallel work.
*/
type Session struct {
	cookies       map[string]string
	publicCookies map[string]string

	uuids          UUIDs
	deviceSettings *device.Settings
	userAgent      string
	locale         string

	lastLogin *int64
	username  string
}

func New() *Session {
	return &Session{
		cookies:       map[string]string{},
		publicCookies: map[string]string{},
		locale:        "en_US",
	}
}

// SetDevice installs the device settings (the reference profile when nil)
// and regenerates the full identifier set. Presenting a new device with old
// identifiers is a known automation signal, so regeneration is
// unconditional.
func (sess *Session) SetDevice(settings *device.Settings) error {
	if settings == nil {
		var err error
		settings, err = device.LoadDefaultSettings()
		if err != nil {
			return err
		}
		log.Debugf("Using reference device profile: %s", settings.PreferredFilename())
	}
	sess.deviceSettings = settings
	sess.SetUUIDs(UUIDs{})
	return nil
}

// SetUserAgent overrides the user agent, rendering it from the device
// settings when empty. Identifiers are regenerated, same as SetDevice.
func (sess *Session) SetUserAgent(userAgent string) {
	if userAgent == "" && sess.deviceSettings != nil {
		userAgent = sess.deviceSettings.UserAgent(sess.locale)
	}
	sess.userAgent = userAgent
	sess.SetUUIDs(UUIDs{})
}

func (sess *Session) UserAgent() string {
	return sess.userAgent
}

func (sess *Session) UUIDs() UUIDs {
	return sess.uuids
}

func (sess *Session) DeviceSettings() *device.Settings {
	return sess.deviceSettings
}

func (sess *Session) Username() string {
	return sess.username
}

func (sess *Session) SetUsername(username string) {
	sess.username = username
}

func (sess *Session) LastLogin() *int64 {
	return sess.lastLogin
}

func (sess *Session) StampLastLogin() {
	now := time.Now().Unix()
	sess.lastLogin = &now
}

// CookieValue returns the named cookie or "".
func (sess *Session) CookieValue(name string) string {
	return sess.cookies[name]
}

func (sess *Session) SetCookie(name string, value string) {
	sess.cookies[name] = value
}

// Cookies returns a copy of the jar.
func (sess *Session) Cookies() map[string]string {
	jar := make(map[string]string, len(sess.cookies))
	for name, value := range sess.cookies {
		jar[name] = value
	}
	return jar
}

func (sess *Session) ClearCookies() {
	sess.cookies = map[string]string{}
}

// PublicCookieValue reads the unauthenticated cookie scope.
func (sess *Session) PublicCookieValue(name string) string {
	return sess.publicCookies[name]
}
