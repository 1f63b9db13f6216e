// internal/cli/group.go
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"xibbaz/internal/api"
	"xibbaz/internal/objects"
)

var groupCmd = &cobra.Command{
	Use:   "group <add|remove> <group> <host>...",
	Short: "Add or remove hosts in a host group",
	Long: `Add or remove hosts in a host group. Useful for putting hosts into and
out of a special group for on-demand maintenance. Group and hosts may be
given by name or id.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		verb := args[0]
		if verb != "add" && verb != "remove" {
			return fmt.Errorf("unknown verb %q (want add or remove)", verb)
		}
		sess, err := connect()
		if err != nil {
			return err
		}
		group, err := sess.Group(args[1])
		if err != nil {
			return err
		}
		if group == nil {
			return fmt.Errorf("group not found: %s", args[1])
		}
		hosts, err := resolveHosts(sess, args[2:])
		if err != nil {
			return err
		}
		if verb == "remove" {
			_, err = group.RemoveHosts(hosts...)
		} else {
			_, err = group.AddHosts(hosts...)
		}
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"group": group.Text(),
			"hosts": len(hosts),
			"verb":  verb,
		}).Info("group membership updated")
		return nil
	},
}

func resolveHosts(sess *api.Session, names []string) ([]*objects.Object, error) {
	hosts := make([]*objects.Object, 0, len(names))
	for _, name := range names {
		h, err := sess.Host(name)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, fmt.Errorf("host not found: %s", name)
		}
		hosts = append(hosts, h.Object)
	}
	return hosts, nil
}
