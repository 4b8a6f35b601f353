// Program pjson prints snapshots of partial JSON objects read from files or
// standard input.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("pjson")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:          "pjson",
		Short:        "Snapshot partial JSON objects from streaming input",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")

	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
