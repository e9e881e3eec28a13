package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "nibble",
		Short: "Parse small textual formats with caret diagnostics",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity (repeatable levels, 0 = quiet)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLocateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
