package cmd

import (
	"fmt"

	"github.com/jarijaas/go-igapi/pkg/session"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionInjectCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Session operations",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New()
		if _, err := sess.LoadSettings(settingsPath); err != nil {
			return err
		}

		fmt.Printf("user id:    %d\n", sess.UserID())
		fmt.Printf("logged in:  %v\n", sess.LoggedIn())
		fmt.Printf("user agent: %s\n", sess.UserAgent())
		fmt.Printf("device id:  %s\n", sess.UUIDs().DeviceID)
		if last := sess.LastLogin(); last != nil {
			fmt.Printf("last login: %d\n", *last)
		}
		return nil
	},
}

var sessionInjectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Copy the sessionid into the public cookie scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New()
		if _, err := sess.LoadSettings(settingsPath); err != nil {
			return err
		}

		if !sess.InjectSessionIDToPublic() {
			log.Warn("Session has no sessionid cookie yet, login first")
			return nil
		}
		log.Info("sessionid injected into the public scope")
		return sess.DumpSettings(settingsPath)
	},
}
