// internal/cli/login.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"xibbaz/internal/vault"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials and store the password in the local vault",
	Long: `Verify the user/password pair against the server and, on success, store
the password in the local vault so later runs need no ZABBIX_PASS in the
environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := cfg.User
		if user == "" {
			user = os.Getenv("USER")
		}
		if user == "" {
			return fmt.Errorf("no user: set --user or ZABBIX_USER")
		}
		password := cfg.Password
		if password == "" {
			fmt.Fprintf(os.Stderr, "Password for %s: ", user)
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return fmt.Errorf("empty password")
		}

		sess, err := newSession()
		if err != nil {
			return err
		}
		ok, err := sess.Login(user, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if !ok {
			return fmt.Errorf("invalid credentials for %s", user)
		}

		v, err := vault.Open(cfg.Vault.Path)
		if err != nil {
			return err
		}
		defer v.Close()
		if err := v.Set(cfg.Vault.Service, user, password); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"user":  user,
			"vault": cfg.Vault.Path,
		}).Info("credentials stored")
		return nil
	},
}
