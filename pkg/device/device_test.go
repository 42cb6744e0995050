package device

import (
	"io/ioutil"
	"testing"
)

func TestParseGetPropsOutput(t *testing.T) {
	data, err := ioutil.ReadFile("./testdata/device.getprops")
	if err != nil {
		t.Fatal(err)
	}

	props := parseGetPropOutput(string(data))

	const testProp = "ro.product.model"
	const validPropValue = "MI 5s"
	if val, has := props[testProp]; has {
		if val != validPropValue {
			t.Fatalf("%s should be %s, was %s", testProp, validPropValue, val)
		}
	} else {
		t.Fatalf("Props should have %s", testProp)
	}

	if props["ro.build.version.sdk"] != "26" {
		t.Fatalf("sdk version parsed incorrectly: %s", props["ro.build.version.sdk"])
	}
}

func TestGetBundledProfileNames(t *testing.T) {
	profs := GetBundledProfiles()
	if len(profs) == 0 {
		t.Fatal("Could not find bundled profiles")
	}

	found := false
	for _, prof := range profs {
		if prof.Name == DefaultProfileName {
			found = true
		}
	}
	if !found {
		t.Fatalf("Reference profile %s should be bundled", DefaultProfileName)
	}
}

func TestLoadDefaultSettings(t *testing.T) {
	settings, err := LoadDefaultSettings()
	if err != nil {
		t.Fatal(err)
	}

	if settings.Device != "MI 5s" {
		t.Fatalf("Reference device should be MI 5s, was %s", settings.Device)
	}
	if settings.AndroidVersion != 26 {
		t.Fatalf("Reference device sdk should be 26, was %d", settings.AndroidVersion)
	}
}

func TestUserAgentRender(t *testing.T) {
	settings := &Settings{
		AppVersion:     "169.3.0.30.135",
		AndroidVersion: 26,
		AndroidRelease: "8.0.0",
		DPI:            "640dpi",
		Resolution:     "1440x2560",
		Manufacturer:   "Xiaomi",
		Device:         "MI 5s",
		Model:          "capricorn",
		CPU:            "qcom",
		VersionCode:    "264009049",
	}

	const expected = "Instagram 169.3.0.30.135 Android (26/8.0.0; 640dpi; 1440x2560; " +
		"Xiaomi; MI 5s; capricorn; qcom; en_US; 264009049)"
	if ua := settings.UserAgent(""); ua != expected {
		t.Fatalf("user agent render mismatch: %s", ua)
	}
}

func TestLoadSettingsFromIniData(t *testing.T) {
	settings, err := LoadSettingsFromIniData([]byte(`
app_version = 169.3.0.30.135
android_version = 29
android_release = 10
dpi = 420dpi
resolution = 1080x2280
manufacturer = samsung
device = SM-G973F
model = beyond1
cpu = exynos9820
version_code = 264009049
`))
	if err != nil {
		t.Fatal(err)
	}

	if settings.Manufacturer != "samsung" || settings.AndroidVersion != 29 {
		t.Fatalf("ini profile parsed incorrectly: %+v", settings)
	}
}

func TestLoadSettingsFromIncompleteIni(t *testing.T) {
	if _, err := LoadSettingsFromIniData([]byte("dpi = 420dpi")); err == nil {
		t.Fatal("profile without app_version should be rejected")
	}
}

func TestPreferredFilename(t *testing.T) {
	settings := &Settings{Manufacturer: "Xiaomi", Model: "MI 5s", AndroidVersion: 26}
	if name := settings.PreferredFilename(); name != "xiaomi_mi_5s_sdk_26.ini" {
		t.Fatalf("unexpected profile filename: %s", name)
	}
}
