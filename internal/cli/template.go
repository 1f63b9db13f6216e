// internal/cli/template.go
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template <add|remove> <template> <host>...",
	Short: "Link or unlink hosts and a template",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		verb := args[0]
		if verb != "add" && verb != "remove" {
			return fmt.Errorf("unknown verb %q (want add or remove)", verb)
		}
		sess, err := connect()
		if err != nil {
			return err
		}
		tmpl, err := sess.Template(args[1])
		if err != nil {
			return err
		}
		if tmpl == nil {
			return fmt.Errorf("template not found: %s", args[1])
		}
		hosts, err := resolveHosts(sess, args[2:])
		if err != nil {
			return err
		}
		if verb == "remove" {
			_, err = tmpl.RemoveHosts(hosts...)
		} else {
			_, err = tmpl.AddHosts(hosts...)
		}
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"template": tmpl.Text(),
			"hosts":    len(hosts),
			"verb":     verb,
		}).Info("template links updated")
		return nil
	},
}
