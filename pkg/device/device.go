package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jarijaas/go-igapi/pkg/adb"
	log "github.com/sirupsen/logrus"
)

func parseGetPropOutput(data string) map[string]string {
	props := map[string]string{}

	for _, line := range strings.Split(data, "\n") {
		// each row looks like: [ro.product.model]: [MI 5s]
		open := strings.Index(line, "[")
		if open < 0 {
			continue
		}
		sep := strings.Index(line, "]: [")
		if sep < 0 {
			continue
		}
		key := line[open+1 : sep]
		value := strings.TrimSuffix(strings.TrimSpace(line[sep+4:]), "]")
		props[key] = value
	}
	return props
}

func propOr(props map[string]string, key string, defaultValue string) string {
	if val, has := props[key]; has && val != "" {
		return val
	}
	return defaultValue
}

// CloneAttachedDevice builds device settings from a USB-attached phone via
// adb, so the session fingerprint matches real hardware. App version and
// version code cannot be read from the phone and are taken from the
// reference profile.
func CloneAttachedDevice() (*Settings, error) {
	// Todo: improve adb device selection logic
	cli, err := adb.CreateClient()
	if err != nil {
		return nil, err
	}

	cli.SelectAnyUsbDevice()

	rawProps, err := cli.RunCommand("getprop")
	if err != nil {
		return nil, err
	}
	props := parseGetPropOutput(rawProps)

	settings, err := LoadDefaultSettings()
	if err != nil {
		return nil, err
	}

	settings.Manufacturer = propOr(props, "ro.product.manufacturer", settings.Manufacturer)
	settings.Model = propOr(props, "ro.product.model", settings.Model)
	settings.Device = propOr(props, "ro.product.device", settings.Device)
	settings.AndroidRelease = propOr(props, "ro.build.version.release", settings.AndroidRelease)
	settings.CPU = propOr(props, "ro.board.platform", settings.CPU)

	if sdk, err := strconv.Atoi(propOr(props, "ro.build.version.sdk", "")); err == nil {
		settings.AndroidVersion = sdk
	}

	wmOutput, err := cli.RunCommand("wm", "size")
	if err != nil {
		return nil, err
	}
	wmOutput = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(wmOutput), "Physical size: "))

	log.Infof("Screen: %s", wmOutput)
	settings.Resolution = wmOutput

	densityOutput, err := cli.RunCommand("wm", "density")
	if err != nil {
		return nil, err
	}
	densityOutput = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(densityOutput), "Physical density: "))
	settings.DPI = fmt.Sprintf("%sdpi", densityOutput)

	return settings, nil
}
