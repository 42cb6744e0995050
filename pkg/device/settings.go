package device

import (
	"fmt"

	"github.com/jarijaas/go-igapi/pkg/common"
)

// Settings describes the Android device the session presents to the API.
// Every field ends up either in the user agent or in the persisted session
// file, so the JSON keys follow the settings-file schema.
type Settings struct {
	AppVersion     string `json:"app_version" ini:"app_version"`
	AndroidVersion int    `json:"android_version" ini:"android_version"`
	AndroidRelease string `json:"android_release" ini:"android_release"`
	DPI            string `json:"dpi" ini:"dpi"`
	Resolution     string `json:"resolution" ini:"resolution"`
	Manufacturer   string `json:"manufacturer" ini:"manufacturer"`
	Device         string `json:"device" ini:"device"`
	Model          string `json:"model" ini:"model"`
	CPU            string `json:"cpu" ini:"cpu"`
	VersionCode    string `json:"version_code" ini:"version_code"`
}

// UserAgent renders the mobile app user agent for this device.
func (s *Settings) UserAgent(locale string) string {
	if locale == "" {
		locale = "en_US"
	}
	return fmt.Sprintf(common.UserAgentTemplate,
		s.AppVersion, s.AndroidVersion, s.AndroidRelease, s.DPI, s.Resolution,
		s.Manufacturer, s.Device, s.Model, s.CPU, locale, s.VersionCode)
}

// Subset returns the fields some endpoints expect as a "device" payload.
func (s *Settings) Subset() map[string]interface{} {
	return map[string]interface{}{
		"manufacturer":    s.Manufacturer,
		"model":           s.Model,
		"android_version": s.AndroidVersion,
		"android_release": s.AndroidRelease,
	}
}

func (s *Settings) PreferredFilename() string {
	return fmt.Sprintf("%s_%s_sdk_%d.ini",
		makeStringFilenameFriendly(s.Manufacturer), makeStringFilenameFriendly(s.Model),
		s.AndroidVersion)
}
