// internal/cli/get.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xibbaz/internal/objects"
	"xibbaz/internal/output"
)

var getCmd = &cobra.Command{
	Use:   "get <entity> [name:value ...]",
	Short: "Query entities of a kind",
	Long: `Query entities of one kind with raw API parameters.

Examples:
  xibbaz get host limit:5
  xibbaz get hostgroup filter:name:Linux+flags:0
  xibbaz get trigger search:description:disk monitored:true --jq '.[0]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := objects.KindByName(args[0])
		if !ok {
			return fmt.Errorf("unknown entity %q (one of %v)", args[0], objects.Kinds())
		}
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}
		sess, err := connect()
		if err != nil {
			return err
		}
		objs, err := sess.Fetch(kind, params)
		if err != nil {
			return err
		}
		records := make([]map[string]any, 0, len(objs))
		for _, o := range objs {
			records = append(records, o.Map())
		}
		r := output.Renderer{Format: cfg.Output.Format, Query: jqExpr}
		return r.Render(os.Stdout, records)
	},
}
