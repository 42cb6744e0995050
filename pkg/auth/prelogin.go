package auth

import (
	"fmt"

	"github.com/jarijaas/go-igapi/pkg/common"
	"github.com/jarijaas/go-igapi/pkg/transport"
)

// The pre-login flow replays the calls a fresh install issues before
// submitting credentials. Every step is best effort with respect to its
// structured result; only transport failures bubble up.

func (client *Client) preLoginFlow() error {
	if _, err := client.setContactPointPrefill("prefill"); err != nil {
		return err
	}
	if _, err := client.getPrefillCandidates(true); err != nil {
		return err
	}
	if _, err := client.setContactPointPrefill("prefill"); err != nil {
		return err
	}
	if _, err := client.syncLauncher(true); err != nil {
		return err
	}
	if _, err := client.syncDeviceFeatures(true); err != nil {
		return err
	}
	return nil
}

func (client *Client) setContactPointPrefill(usage string) (*transport.Response, error) {
	data := map[string]string{
		"phone_id":   client.sess.UUIDs().PhoneID,
		"usage":      usage,
		"_csrftoken": client.sess.Token(),
	}
	return client.transport.Private("accounts/contact_point_prefill/", data, &transport.Options{Login: true})
}

func (client *Client) getPrefillCandidates(login bool) (*transport.Response, error) {
	uuids := client.sess.UUIDs()
	data := map[string]string{
		"android_device_id": uuids.DeviceID,
		"client_contact_points": fmt.Sprintf(
			`[{"type":"omnistring","value":"%s","source":"last_login_attempt"}]`, client.username),
		"phone_id":   uuids.PhoneID,
		"usages":     `["account_recovery_omnibox"]`,
		"device_id":  uuids.DeviceID,
		"_csrftoken": client.sess.Token(),
	}
	return client.transport.Private("accounts/get_prefill_candidates/", data, &transport.Options{Login: login})
}

func (client *Client) syncLauncher(login bool) (*transport.Response, error) {
	data := map[string]string{
		"id":                      client.sess.UUIDs().UUID,
		"server_config_retrieval": "1",
	}
	if !login {
		data["_uid"] = fmt.Sprint(client.sess.UserID())
		data["_uuid"] = client.sess.UUIDs().UUID
		data["_csrftoken"] = client.sess.Token()
	}
	return client.transport.Private("launcher/sync/", data, &transport.Options{Login: login})
}

func (client *Client) syncDeviceFeatures(login bool) (*transport.Response, error) {
	data := map[string]string{
		"id":                      client.sess.UUIDs().UUID,
		"server_config_retrieval": "1",
		"experiments":             common.LoginExperiments,
	}
	if !login {
		data["_uuid"] = client.sess.UUIDs().UUID
		data["_uid"] = fmt.Sprint(client.sess.UserID())
		data["_csrftoken"] = client.sess.Token()
	}
	return client.transport.Private("qe/sync/", data, &transport.Options{Login: login})
}
