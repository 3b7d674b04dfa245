package cmd

import (
	"fmt"
	"slices"

	"github.com/Sompom/listptr/pkg/list"
	"github.com/spf13/cobra"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare STRING",
	Short: "check that both append variants build identical lists",
	Long: `compare builds the same list from STRING's digit values with the direct
and the indirect variant, prints both traversals, and fails if they disagree
in length or order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := digitValues(args[0])
		direct := list.Build(list.VariantDirect, values...)
		indirect := list.Build(list.VariantIndirect, values...)

		dv, iv := list.Values(direct), list.Values(indirect)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "direct:   %v\n", dv)
		fmt.Fprintf(out, "indirect: %v\n", iv)

		if !slices.Equal(dv, iv) {
			return fmt.Errorf("variants disagree: direct=%v indirect=%v", dv, iv)
		}
		fmt.Fprintf(out, "variants agree: %d node(s)\n", list.Length(direct))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
