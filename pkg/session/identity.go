package session

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDs is the identifier set presented with every request. All values are
// stable once generated; DeviceID is only re-derived when the device
// settings change.
type UUIDs struct {
	PhoneID         string `json:"phone_id"`
	UUID            string `json:"uuid"`
	ClientSessionID string `json:"client_session_id"`
	AdvertisingID   string `json:"advertising_id"`
	DeviceID        string `json:"device_id"`
}

func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateDeviceID derives an android device id from the current wall clock.
// Uniqueness is best effort, matching the mobile app.
func GenerateDeviceID() string {
	sum := md5.Sum([]byte(fmt.Sprint(time.Now().UnixNano())))
	return "android-" + hex.EncodeToString(sum[:])[:16]
}

// SetUUIDs fills any missing identifier with a freshly generated one,
// keeping fields that are already supplied. Passing the zero value
// regenerates the full set.
func (sess *Session) SetUUIDs(uuids UUIDs) {
	sess.uuids = UUIDs{
		PhoneID:         orGenerated(uuids.PhoneID),
		UUID:            orGenerated(uuids.UUID),
		ClientSessionID: orGenerated(uuids.ClientSessionID),
		AdvertisingID:   orGenerated(uuids.AdvertisingID),
		DeviceID:        uuids.DeviceID,
	}
	if sess.uuids.DeviceID == "" {
		sess.uuids.DeviceID = GenerateDeviceID()
	}
}

func orGenerated(val string) string {
	if val != "" {
		return val
	}
	return GenerateUUID()
}
