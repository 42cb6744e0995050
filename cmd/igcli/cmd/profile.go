package cmd

import (
	"os"
	"path"

	"github.com/jarijaas/go-igapi/pkg/config"
	"github.com/jarijaas/go-igapi/pkg/device"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(cloneCmd)
	profileCmd.AddCommand(listProfilesCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Device profile operations",
}

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clones the fingerprint of the attached USB device",
	Long: `Clones the fingerprint of the attached USB device using "adb shell getprop" and saves it as a
device profile, so the session presents real hardware instead of the bundled reference device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := device.CloneAttachedDevice()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(config.GetConfigDirectoryProfilesPath(), os.ModePerm); err != nil {
			return err
		}

		filepath := path.Join(config.GetConfigDirectoryProfilesPath(), settings.PreferredFilename())
		log.Infof("Save device profile to %s", filepath)
		return settings.SaveToFile(filepath)
	},
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List known device profiles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, prof := range device.GetAllProfiles() {
			log.Info(prof.Name)
		}
	},
}
