package transport

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	xhttp "github.com/Jarijaas/go-tls-exposed/http"
	xtls "github.com/Jarijaas/go-tls-exposed/tls"
	"github.com/gojektech/heimdall/v6/hystrix"
	"github.com/jarijaas/go-igapi/pkg/common"
	"github.com/jarijaas/go-igapi/pkg/session"
	log "github.com/sirupsen/logrus"
)

// HTTPClient implements Requester against the real API. Steady-state calls
// go through a hystrix client (timeouts, retries, circuit breaker); login
// phase calls use a client with the mobile TLS ClientHello, since those
// endpoints are the ones that care about the handshake fingerprint.
type HTTPClient struct {
	sess    *session.Session
	signer  Signer
	steady  *hystrix.Client
	login   *xhttp.Client
	baseURL string
}

func NewHTTPClient(sess *session.Session, signer Signer) *HTTPClient {
	return &HTTPClient{
		sess:    sess,
		signer:  signer,
		steady:  createHTTPClient(),
		login:   createXTLSHTTPClient(),
		baseURL: common.APIBaseURL,
	}
}

func createHTTPClient() *hystrix.Client {
	return hystrix.NewClient(
		hystrix.WithHTTPTimeout(30*time.Second),
		hystrix.WithMaxConcurrentRequests(10),
		hystrix.WithErrorPercentThreshold(20),
		hystrix.WithRetryCount(2),
	)
}

// Client with the TLS parameters of the Android app's stack. Uses a
// modified tls package, so only login calls go through it.
func createXTLSHTTPClient() *xhttp.Client {
	conf := &xtls.Config{
		CipherSuites: []uint16{
			0x1301, 0x1302, 0x1303, 0xc02b, 0xc02f,
			0xc02c, 0xc030, 0xcca9, 0xcca8, 0xc013,
			0xc014, 0x009c, 0x009d, 0x002f, 0x0035,
		},
		TicketSupported:   true,
		PskModes:          []uint8{xtls.PskModeDHE},
		SupportedVersions: []uint16{xtls.VersionTLS13, xtls.VersionTLS12},
		SupportedSignatureAlgorithms: []xtls.SignatureScheme{
			0x0403, 0x0804, 0x0401, 0x0503, 0x0805, 0x0501, 0x0806, 0x0601,
		},
		OscpStapling:                 true,
		Scts:                         true,
		CompressionMethods:           []uint8{xtls.CompressionNone},
		SecureRenegotiationSupported: false,
		ClientHelloVersion:           xtls.VersionTLS12,
		SupportedPoints:              []uint8{xtls.PointFormatUncompressed},
		SupportedCurves:              []xtls.CurveID{0x001d, 0x0017, 0x0018, 0x0019},
		Extensions: []uint16{
			xtls.ExtensionServerName, xtls.ExtensionSupportedPoints, xtls.ExtensionSupportedCurves,
			xtls.ExtensionSessionTicket, xtls.ExtensionSignatureAlgorithms, xtls.ExtensionSupportedVersions,
			xtls.ExtensionPSKModes, xtls.ExtensionKeyShare,
		},
	}

	transport := &xhttp.Transport{
		TLSClientConfig: conf,
	}

	return &xhttp.Client{Transport: transport}
}

func (client *HTTPClient) Private(endpoint string, data interface{}, opts *Options) (*Response, error) {
	if opts == nil {
		opts = &Options{}
	}

	method := "GET"
	body := ""

	switch payload := data.(type) {
	case nil:
	case string:
		method = "POST"
		if opts.Unsigned {
			body = payload
		} else {
			body = client.signer.SignPayload(payload)
		}
	case map[string]string:
		method = "POST"
		if opts.Unsigned {
			form := url.Values{}
			for key, val := range payload {
				form.Set(key, val)
			}
			body = form.Encode()
		} else {
			raw, err := json.Marshal(payload)
			if err != nil {
				return nil, err
			}
			body = client.signer.SignPayload(string(raw))
		}
	default:
		return nil, fmt.Errorf("unsupported payload type %T", data)
	}

	reqURL := client.baseURL + "/" + strings.TrimPrefix(endpoint, "/")

	log.Debugf("%s %s login=%v", method, reqURL, opts.Login)

	headers := client.standardHeaders()
	for key, val := range opts.Headers {
		headers[key] = val
	}

	var statusCode int
	var raw []byte
	var cookies map[string]string
	var err error

	if opts.Login {
		statusCode, raw, cookies, err = client.sendXTLS(method, reqURL, body, headers)
	} else {
		statusCode, raw, cookies, err = client.send(method, reqURL, body, headers)
	}
	if err != nil {
		return nil, err
	}

	for name, value := range cookies {
		client.sess.SetCookie(name, value)
	}

	decoded := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, &PrivateError{
				Endpoint:   endpoint,
				StatusCode: statusCode,
				Message:    fmt.Sprintf("non-JSON response: %.120s", string(raw)),
			}
		}
	}

	resp := &Response{
		StatusCode: statusCode,
		Body:       decoded,
		Raw:        raw,
	}
	resp.Status, _ = decoded["status"].(string)

	if statusCode >= 400 || resp.Status == "fail" {
		return resp, mapError(endpoint, statusCode, resp)
	}
	return resp, nil
}

func (client *HTTPClient) standardHeaders() map[string]string {
	headers := map[string]string{
		"User-Agent":           client.sess.UserAgent(),
		"Accept-Language":      "en-US",
		"X-IG-App-ID":          "567067343352427",
		"X-IG-Capabilities":    "3brTvx0=",
		"X-IG-Connection-Type": "WIFI",
		"Content-Type":         "application/x-www-form-urlencoded; charset=UTF-8",
		"Accept-Encoding":      "gzip",
	}

	if cookieHeader := client.cookieHeader(); cookieHeader != "" {
		headers["Cookie"] = cookieHeader
	}
	return headers
}

func (client *HTTPClient) cookieHeader() string {
	var pairs []string
	for name, value := range client.sess.Cookies() {
		pairs = append(pairs, fmt.Sprintf("%s=%s", name, value))
	}
	return strings.Join(pairs, "; ")
}

func (client *HTTPClient) send(method, reqURL, body string, headers map[string]string) (int, []byte, map[string]string, error) {
	req, err := http.NewRequest(method, reqURL, strings.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	for key, val := range headers {
		req.Header.Set(key, val)
	}

	res, err := client.steady.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	cookies := map[string]string{}
	for _, cookie := range res.Cookies() {
		cookies[cookie.Name] = cookie.Value
	}
	return res.StatusCode, raw, cookies, nil
}

func (client *HTTPClient) sendXTLS(method, reqURL, body string, headers map[string]string) (int, []byte, map[string]string, error) {
	req, err := xhttp.NewRequest(method, reqURL, strings.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	for key, val := range headers {
		req.Header.Set(key, val)
	}

	res, err := client.login.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	cookies := map[string]string{}
	for _, cookie := range res.Cookies() {
		cookies[cookie.Name] = cookie.Value
	}
	return res.StatusCode, raw, cookies, nil
}

func mapError(endpoint string, statusCode int, resp *Response) error {
	base := PrivateError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Status:     resp.Status,
		Message:    resp.String("message"),
		Body:       resp.Body,
	}

	if required, _ := resp.Body["two_factor_required"].(bool); required {
		return &TwoFactorRequired{
			PrivateError: base,
			Info:         resp.Object("two_factor_info"),
		}
	}

	switch resp.String("error_type") {
	case "bad_password", "invalid_user":
		return &BadCredentials{PrivateError: base}
	}

	switch base.Message {
	case "Please wait a few minutes before you try again.":
		return &PleaseWaitFewMinutes{PrivateError: base}
	case "challenge_required":
		return &ChallengeRequired{PrivateError: base}
	}
	return &base
}
