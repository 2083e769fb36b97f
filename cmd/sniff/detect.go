package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sniffgo/sniff"
	"github.com/sniffgo/sniff/sniffmetrics"
)

var detectMetrics = sniffmetrics.NewCollector(prometheus.NewRegistry())

var detectCmd = &cobra.Command{
	Use:   "detect <path>",
	Short: "Detect the format of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.WithField("path", path).Debug("detecting file format")

	res, ok, err := sniff.DetectFromFile(path)
	detectMetrics.Observe(res, ok)
	if err != nil {
		return fmt.Errorf("sniff: detect %s: %w", path, err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "unknown")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Ext, res.Mime)
	return nil
}
