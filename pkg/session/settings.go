package session

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/jarijaas/go-igapi/pkg/device"
)

// Settings is the persisted form of a session. Load and dump are inverse
// operations for every field here.
type Settings struct {
	UUIDs          UUIDs             `json:"uuids"`
	Cookies        map[string]string `json:"cookies"`
	LastLogin      *int64            `json:"last_login"`
	DeviceSettings *device.Settings  `json:"device_settings"`
	UserAgent      string            `json:"user_agent"`
}

// GetSettings captures a consistent snapshot of the session.
func (sess *Session) GetSettings() *Settings {
	return &Settings{
		UUIDs:          sess.uuids,
		Cookies:        sess.Cookies(),
		LastLogin:      sess.lastLogin,
		DeviceSettings: sess.deviceSettings,
		UserAgent:      sess.userAgent,
	}
}

// SetSettings replaces the working session state wholesale. Saved
// identifiers survive the device install; only missing ones are generated.
func (sess *Session) SetSettings(settings *Settings) error {
	sess.cookies = map[string]string{}
	for name, value := range settings.Cookies {
		sess.cookies[name] = value
	}
	sess.lastLogin = settings.LastLogin

	if err := sess.SetDevice(settings.DeviceSettings); err != nil {
		return err
	}
	sess.SetUserAgent(settings.UserAgent)

	// SetDevice and SetUserAgent regenerated the identifiers; restore the
	// persisted ones last so a pure save/restore is lossless.
	sess.SetUUIDs(settings.UUIDs)
	return nil
}

func (sess *Session) LoadSettings(path string) (*Settings, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}

	if err := sess.SetSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DumpSettings writes the current snapshot, overwriting the file. The
// snapshot is marshalled before the file is touched, so a failed
// serialization leaves no partial file behind.
func (sess *Session) DumpSettings(path string) error {
	data, err := json.Marshal(sess.GetSettings())
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0600)
}
