package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("xer")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "xer",
		Short: "Inspect and convert XER schedule exports",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "utf-8", "character set of the export file")

	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
