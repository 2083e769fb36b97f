package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sniff",
	Short: "Identify file formats from a bounded byte prefix",
	Long: `sniff is a command-line tool for identifying the file format of a
byte stream by inspecting a bounded prefix of its content, without relying
on the filename or decoding the payload.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("sniff failed")
		os.Exit(1)
	}
}
