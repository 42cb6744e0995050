package device

import (
	"embed"
	"fmt"
	"io/fs"
	"io/ioutil"
	"path"
	"path/filepath"
	"strings"

	"github.com/jarijaas/go-igapi/pkg/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

//go:embed profiles/**.ini
var bundledProfiles embed.FS

type ProfileFile struct {
	Name    string
	Path    string
	bundled bool
}

func GetBundledProfiles() []ProfileFile {
	var profiles []ProfileFile
	_ = fs.WalkDir(bundledProfiles, "profiles", func(p string, d fs.DirEntry, err error) error {
		if d.IsDir() {
			return nil
		}

		profiles = append(profiles, ProfileFile{
			Name:    strings.TrimSuffix(filepath.Base(p), ".ini"),
			Path:    p,
			bundled: true,
		})
		return nil
	})
	return profiles
}

func GetConfigDirProfiles() ([]ProfileFile, error) {
	var profiles []ProfileFile

	matches, err := filepath.Glob(path.Join(config.GetConfigDirectoryPath(), "profiles", "**.ini"))
	if err != nil {
		return profiles, err
	}

	for _, match := range matches {
		profiles = append(profiles, ProfileFile{
			Name:    strings.TrimSuffix(filepath.Base(match), ".ini"),
			Path:    match,
			bundled: false,
		})
	}
	return profiles, nil
}

func GetAllProfiles() []ProfileFile {
	var profiles []ProfileFile

	profiles = append(profiles, GetBundledProfiles()...)

	configDirProfiles, err := GetConfigDirProfiles()
	if err != nil {
		log.Warnf("Could not load config dir profiles: %v", err)
	}
	return append(profiles, configDirProfiles...)
}

func LoadSettingsFromIniData(data []byte) (*Settings, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := cfg.Section("").MapTo(settings); err != nil {
		return nil, err
	}

	if settings.AppVersion == "" || settings.Manufacturer == "" {
		return nil, fmt.Errorf("device profile is missing app_version or manufacturer")
	}
	return settings, nil
}

// DefaultProfileName is the reference device the session presents when no
// explicit device was configured.
const DefaultProfileName = "xiaomi_capricorn_sdk_26"

func LoadDefaultSettings() (*Settings, error) {
	for _, profile := range GetBundledProfiles() {
		if profile.Name == DefaultProfileName {
			return LoadProfile(profile)
		}
	}
	return nil, fmt.Errorf("reference device profile %s is not bundled", DefaultProfileName)
}

func LoadProfile(profile ProfileFile) (*Settings, error) {
	var data []byte
	var err error

	if profile.bundled {
		data, err = bundledProfiles.ReadFile(profile.Path)
	} else {
		data, err = ioutil.ReadFile(profile.Path)
	}
	if err != nil {
		return nil, err
	}
	return LoadSettingsFromIniData(data)
}

// LoadProfileByName searches bundled profiles first, then the config dir.
func LoadProfileByName(name string) (*Settings, error) {
	for _, profile := range GetAllProfiles() {
		if profile.Name == name {
			return LoadProfile(profile)
		}
	}
	return nil, fmt.Errorf("unknown device profile: %s", name)
}

func (s *Settings) SaveToFile(filepath string) error {
	cfg := ini.Empty()
	if err := cfg.Section("").ReflectFrom(s); err != nil {
		return err
	}
	return cfg.SaveTo(filepath)
}

func makeStringFilenameFriendly(val string) string {
	return strings.ReplaceAll(strings.ToLower(val), " ", "_")
}
