package cmd

import (
	"fmt"

	"github.com/Sompom/listptr/pkg/list"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] STRING",
	Short: "build a list from a string's digit values and print it",
	Long: `run appends one node per character of STRING, in order, each holding the
character's offset from '0'. The build is repeated for the requested number
of iterations and every node of every resulting list is printed, unless
output is silenced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if iterations < 1 {
			return fmt.Errorf("number of iterations must be an integer greater than 0, got %d", iterations)
		}
		variant, err := list.ParseVariant(variantName)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !quiet {
			fmt.Fprintf(out, "Using %s append\n", variant)
		}

		values := digitValues(args[0])
		for iter := 0; iter < iterations; iter++ {
			head := list.Build(variant, values...)
			if quiet {
				continue
			}
			for n := head; n != nil; n = n.Next {
				fmt.Fprintf(out, "Iteration: %d, %p: Value: %d, Next: %p\n", iter, n, n.Value, n.Next)
			}
		}
		return nil
	},
}

var iterations int
var quiet bool
var variantName string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&iterations, "iterations", "n", 1,
		"number of test iterations to run")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"silence per-node output")
	runCmd.Flags().StringVarP(&variantName, "variant", "V", list.VariantIndirect.String(),
		"append variant: direct or indirect")
}

// digitValues converts each character of s to its offset from '0'. The
// conversion is applied to every character, digit or not, so non-digit input
// yields out-of-range values rather than an error.
func digitValues(s string) []int {
	vals := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		vals[i] = int(s[i]) - '0'
	}
	return vals
}
