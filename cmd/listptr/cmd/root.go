package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "listptr",
	Short: "singly-linked-list append demonstrations",
	Long: `listptr demonstrates two equivalent implementations of appending to a
singly linked list: a direct-pointer walk that must special-case the empty
list, and an indirect pointer-to-pointer walk that treats the head and every
node's next field uniformly and needs no special case.

The point of the comparison is not runtime but that the indirect form has
less room for bugs: it removes one branch the programmer could forget or get
wrong.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
