// internal/cli/triggers.go
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"xibbaz/internal/objects"
)

var (
	triggersVerbose bool
	minPriority     string

	// exitStatus is picked up by main after Execute: the triggers report
	// exits with the number of current problems.
	exitStatus int
)

// ExitStatus returns the process exit code requested by a command.
func ExitStatus() int { return exitStatus }

var priorityLevels = map[string]int64{
	"all":      objects.PriorityNotClassified,
	"info":     objects.PriorityInformation,
	"warn":     objects.PriorityWarning,
	"avg":      objects.PriorityAverage,
	"high":     objects.PriorityHigh,
	"disaster": objects.PriorityDisaster,
}

var triggersCmd = &cobra.Command{
	Use:   "triggers [host]",
	Short: "Report a host's trigger status; number of problems is the exit code",
	Long: `Report trigger status for one host, defaulting to the machine the command
runs on. The process exits with the number of current problems.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, ok := priorityLevels[minPriority]
		if !ok {
			return fmt.Errorf("invalid --min-priority %q (all, info, warn, avg, high, disaster)", minPriority)
		}
		name, err := targetHost(args)
		if err != nil {
			return err
		}
		sess, err := connect()
		if err != nil {
			return err
		}
		host, err := sess.Host(name)
		if err != nil {
			return err
		}
		if host == nil {
			return fmt.Errorf("host not found: %s", name)
		}
		triggers, err := sess.Triggers(map[string]any{
			"hostids": []string{host.ID()},
		})
		if err != nil {
			return err
		}
		sort.SliceStable(triggers, func(i, j int) bool {
			vi, vj := propInt(triggers[i], "value"), propInt(triggers[j], "value")
			if vi != vj {
				return vi > vj
			}
			return propInt(triggers[i], "priority") > propInt(triggers[j], "priority")
		})
		status := 0
		for _, t := range triggers {
			if propInt(t, "priority") < min {
				continue
			}
			problematic := propInt(t, "value") > 0
			if problematic {
				status++
			}
			if !triggersVerbose && !problematic {
				continue
			}
			hosts, err := t.Related("hosts")
			if err != nil {
				return err
			}
			first := ""
			if len(hosts) > 0 {
				first = hosts[0].Text()
			}
			fmt.Printf("%-8s  %-12s  %-25s  %s\n",
				propLabel(t, "value"),
				propLabel(t, "priority"),
				first,
				description(t, hosts))
		}
		exitStatus = status
		return nil
	},
}

func init() {
	triggersCmd.Flags().BoolVarP(&triggersVerbose, "verbose", "V", false,
		"Report status of all checks, not just current problems")
	triggersCmd.Flags().StringVarP(&minPriority, "min-priority", "p", "info",
		"Report these triggers only: all, info, warn, avg, high, disaster")
}

// targetHost picks the host to report on, defaulting to the local hostname.
func targetHost(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return os.Hostname()
}

// description substitutes the important macros, namely {HOST.NAME}.
func description(t *objects.Object, hosts []*objects.Object) string {
	s := t.Text()
	if len(hosts) > 0 {
		names := make([]string, 0, len(hosts))
		for _, h := range hosts {
			names = append(names, h.Text())
		}
		s = strings.ReplaceAll(s, "{HOST.NAME}", strings.Join(names, ", "))
	}
	return s
}

func propInt(o *objects.Object, name string) int64 {
	p := o.Prop(name)
	if p == nil {
		return 0
	}
	return p.Int()
}

func propLabel(o *objects.Object, name string) string {
	p := o.Prop(name)
	if p == nil {
		return ""
	}
	if label := p.Label(); label != "" {
		return label
	}
	return p.Str()
}
