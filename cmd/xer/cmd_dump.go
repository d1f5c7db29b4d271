package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/xer/format"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var outputFormat string
	var tableName string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the tables of an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enc format.Encoder
			switch outputFormat {
			case "json":
				enc = format.NewJSONEncoder(os.Stdout)
			case "csv":
				enc = format.NewCSVEncoder(os.Stdout)
			case "line":
				enc = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected json, csv, or line)", outputFormat)
			}

			scanner, closeSource, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer closeSource()

			dumped := 0
			for {
				t, err := scanner.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("scan %s: %w", args[0], err)
				}
				if tableName != "" && t.Name != tableName {
					log.Debugf("skipping table %s", t.Name)
					continue
				}
				if err := enc.Encode(t); err != nil {
					return fmt.Errorf("encode %s: %w", t.Name, err)
				}
				dumped++
			}
			if tableName != "" && dumped == 0 {
				return fmt.Errorf("no table named %s in %s", tableName, args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, csv, line)")
	cmd.Flags().StringVarP(&tableName, "table", "t", "", "dump only the named table")

	return cmd
}
