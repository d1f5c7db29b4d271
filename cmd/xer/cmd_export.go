package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhamidi/xer/format"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file> <dir>",
		Short: "Write each table of an export as a CSV file under dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := args[1]
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			scanner, closeSource, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer closeSource()

			for {
				t, err := scanner.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("scan %s: %w", args[0], err)
				}
				if err := writeTableCSV(outDir, t.Name, func(w io.Writer) error {
					return format.NewCSVEncoder(w).Encode(t)
				}); err != nil {
					return err
				}
				log.Infof("wrote %s (%d rows)", t.Name, len(t.Rows))
			}
		},
	}
}

func writeTableCSV(dir, name string, write func(io.Writer) error) error {
	path := filepath.Join(dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
