package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "dropselect",
	Short: "Pick options from a dropdown in the terminal",
	Long:  "dropselect shows a searchable single or multi select dropdown over an options file and prints what was picked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: pick
		return pickCmd.RunE(cmd, args)
	},
	Args: cobra.MaximumNArgs(1),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dropselect %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
