// Package main is the entry point for the wildgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wildgen",
	Short: "Procedural Inform 7 wilderness generator",
	Long: `wildgen generates a grid of connected Inform 7 rooms: seeded noise picks a
terrain category for every cell, grid neighbors become map connections, and
rooms are grouped into regions. The result is Inform 7 source on stdout.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}
