package auth

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jarijaas/go-igapi/pkg/common"
	"github.com/jarijaas/go-igapi/pkg/transport"
	log "github.com/sirupsen/logrus"
)

// The post-login flow replays the two calls the app fires right after
// authenticating. A coin flip decides whether the pair is tagged as a pull
// to refresh or a cold start, matching the app restarting vs resuming.
func (client *Client) loginFlow() bool {
	pullToRefresh := client.rnd.Intn(100)%2 == 0

	ok := true
	if _, err := client.getTimelineFeed(pullToRefresh); err != nil {
		log.Warnf("timeline feed emulation failed: %v", err)
		ok = false
	}

	reason := "cold_start"
	if pullToRefresh {
		reason = "pull_to_refresh"
	}
	if _, err := client.getReelsTrayFeed(reason); err != nil {
		log.Warnf("reels tray emulation failed: %v", err)
		ok = false
	}
	return ok
}

func (client *Client) getTimelineFeed(pullToRefresh bool) (*transport.Response, error) {
	uuids := client.sess.UUIDs()

	headers := map[string]string{
		"X-Ads-Opt-Out":       "0",
		"X-DEVICE-ID":         uuids.UUID,
		"X-CM-Bandwidth-KBPS": "-1.000",
		"X-CM-Latency":        strconv.Itoa(client.rnd.Intn(5) + 1),
	}

	data := map[string]interface{}{
		"feed_view_info":      "",
		"phone_id":            uuids.PhoneID,
		"battery_level":       client.rnd.Intn(76) + 25,
		"timezone_offset":     time.Now().Format("-0700"),
		"_csrftoken":          client.sess.Token(),
		"device_id":           uuids.UUID,
		"request_id":          uuids.DeviceID,
		"_uuid":               uuids.UUID,
		"is_charging":         client.rnd.Intn(2),
		"will_sound_on":       client.rnd.Intn(2),
		"session_id":          uuids.ClientSessionID,
		"bloks_versioning_id": common.BloksVersioningID,
	}

	if pullToRefresh {
		data["reason"] = "pull_to_refresh"
		data["is_pull_to_refresh"] = "1"
	} else {
		data["reason"] = "cold_start_fetch"
		data["is_pull_to_refresh"] = "0"
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return client.transport.Private("feed/timeline/", string(raw),
		&transport.Options{Unsigned: true, Headers: headers})
}

func (client *Client) getReelsTrayFeed(reason string) (*transport.Response, error) {
	data := map[string]string{
		"supported_capabilities_new": common.SupportedCapabilities,
		"reason":                     reason,
		"_csrftoken":                 client.sess.Token(),
		"_uuid":                      client.sess.UUIDs().UUID,
	}
	return client.transport.Private("feed/reels_tray/", data, nil)
}

// Expose fires the qe/expose experiment beacon some flows expect after
// login.
func (client *Client) Expose() (*transport.Response, error) {
	data := client.WithDefaultData(map[string]string{
		"id":         client.sess.UUIDs().UUID,
		"experiment": "ig_android_profile_contextual_feed",
	})
	return client.transport.Private("qe/expose/", data, nil)
}

// WithDefaultData merges the authenticated-call context fields into data.
func (client *Client) WithDefaultData(data map[string]string) map[string]string {
	merged := map[string]string{
		"_uuid":      client.sess.UUIDs().UUID,
		"_uid":       fmt.Sprint(client.sess.UserID()),
		"_csrftoken": client.sess.Token(),
		"device_id":  client.sess.UUIDs().DeviceID,
	}
	for key, val := range data {
		merged[key] = val
	}
	return merged
}

// WithActionData is WithDefaultData plus the radio_type tag action
// endpoints expect.
func (client *Client) WithActionData(data map[string]string) map[string]string {
	merged := client.WithDefaultData(map[string]string{"radio_type": "wifi-none"})
	for key, val := range data {
		merged[key] = val
	}
	return merged
}
