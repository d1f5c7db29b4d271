package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/xer/format"
	"github.com/spf13/cobra"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <file>",
		Short: "List the tables in an export with column and row counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, closeSource, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer closeSource()

			enc := format.NewLineEncoder(os.Stdout)
			for {
				t, err := scanner.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("scan %s: %w", args[0], err)
				}
				if err := enc.Encode(t); err != nil {
					return err
				}
			}
		},
	}
}
