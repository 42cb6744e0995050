package cmd

import (
	"fmt"
	"os"

	"github.com/jarijaas/go-igapi/pkg/auth"
	"github.com/jarijaas/go-igapi/pkg/config"
	"github.com/jarijaas/go-igapi/pkg/session"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	username     string
	password     string
	sessionID    string
	settingsPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "igcli",
	Short: "Client for the Instagram private mobile API, maintains a device-backed session",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	// .env is optional; flags and real env vars win
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&username, "username", "",
		"Alternatively, set env var IGAPI_USERNAME")
	rootCmd.PersistentFlags().StringVar(&password, "password", "",
		"Alternatively, set env var IGAPI_PASSWORD")
	rootCmd.PersistentFlags().StringVar(&sessionID, "sessionid", "",
		"Login with a raw sessionid cookie instead of credentials (env IGAPI_SESSIONID)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", config.GetDefaultSettingsPath(),
		"Session settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug messages")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func createAuthClient() (*auth.Client, error) {
	// Check env variables, if cli arguments were not set
	if username == "" {
		username = os.Getenv("IGAPI_USERNAME")
	}
	if password == "" {
		password = os.Getenv("IGAPI_PASSWORD")
	}
	if sessionID == "" {
		sessionID = os.Getenv("IGAPI_SESSIONID")
	}

	sess := session.New()
	if _, err := os.Stat(settingsPath); err == nil {
		if _, err := sess.LoadSettings(settingsPath); err != nil {
			return nil, err
		}
		log.Debugf("Restored session settings from %s", settingsPath)
	}

	return auth.NewClient(&auth.Config{
		Username: username,
		Password: password,
		Session:  sess,
	})
}

func askCredentials() error {
	if username == "" {
		log.Info("Enter username:")
		if _, err := fmt.Scanln(&username); err != nil {
			return err
		}
	}

	if password == "" {
		log.Info("Enter password:")
		passwd, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return err
		}
		password = string(passwd)
	}
	return nil
}

func dumpSession(client *auth.Client) {
	if err := os.MkdirAll(config.GetConfigDirectoryPath(), os.ModePerm); err != nil {
		log.Warnf("Could not create config directory: %v", err)
		return
	}
	if err := client.Session().DumpSettings(settingsPath); err != nil {
		log.Warnf("Could not persist session settings: %v", err)
		return
	}
	log.Debugf("Session settings saved to %s", settingsPath)
}
