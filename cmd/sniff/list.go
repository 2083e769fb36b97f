package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sniffgo/sniff/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every recognized extension and MIME type",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	for _, e := range catalog.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Ext, e.Mime)
	}
	return nil
}
