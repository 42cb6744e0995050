package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verificationCode string

func init() {
	loginCmd.Flags().StringVar(&verificationCode, "code", "",
		"Two-factor verification code, if the account has 2FA enabled")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(reloginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with credentials or a sessionid and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := createAuthClient()
		if err != nil {
			return err
		}

		if sessionID != "" {
			if err := client.LoginBySessionID(sessionID); err != nil {
				return err
			}
		} else {
			if err := askCredentials(); err != nil {
				return err
			}
			if err := client.LoginWithCode(username, password, verificationCode); err != nil {
				return err
			}
		}

		sess := client.Session()
		log.Infof("Logged in as user id %d", sess.UserID())
		log.Debugf("Rank token: %s", sess.RankToken())

		if !client.PostLoginOK() {
			log.Warn("Post-login emulation did not fully succeed")
		}

		dumpSession(client)
		return nil
	},
}

var reloginCmd = &cobra.Command{
	Use:   "relogin",
	Short: "Clear the session cookies and authenticate again",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := createAuthClient()
		if err != nil {
			return err
		}

		if err := askCredentials(); err != nil {
			return err
		}
		if err := client.Login(username, password); err != nil {
			return err
		}
		if err := client.Relogin(); err != nil {
			return err
		}

		log.Infof("Relogged in as user id %d", client.Session().UserID())
		dumpSession(client)
		return nil
	},
}
