package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/wildgen/internal/logger"
	"github.com/lawnchairsociety/wildgen/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an ASCII map of the generated grid",
	Long: `Preview runs the same generation as generate but prints an ASCII map of
the grid with its connections and categories instead of Inform source.`,
	RunE: runPreview,
}

func init() {
	addGenerationFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger.Initialize(logger.LoadConfig())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rooms, _, err := generateWorld(cfg)
	if err != nil {
		return err
	}

	fmt.Print(preview.Render(rooms, cfg.Categories))
	return nil
}
