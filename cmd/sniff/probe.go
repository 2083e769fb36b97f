package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sniffgo/sniff"
)

var probeCmd = &cobra.Command{
	Use:   "probe <path>",
	Short: "Detect a file's format and print the sample bytes the decision was based on",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("sniff: probe %s: %w", path, err)
	}
	defer f.Close()

	sample := make([]byte, 32)
	n, _ := f.Read(sample)
	fmt.Fprintf(cmd.OutOrStdout(), "first %d bytes: % x\n", n, sample[:n])

	res, ok, err := sniff.DetectFromFile(path)
	if err != nil {
		return fmt.Errorf("sniff: probe %s: %w", path, err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "result: unknown")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "result: %s (%s)\n", res.Ext, res.Mime)
	return nil
}
