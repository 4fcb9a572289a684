package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/wildgen/internal/config"
	"github.com/lawnchairsociety/wildgen/internal/inform"
	"github.com/lawnchairsociety/wildgen/internal/logger"
	"github.com/lawnchairsociety/wildgen/internal/terrain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Inform 7 source for a wilderness grid",
	RunE:  runGenerate,
}

func init() {
	addGenerationFlags(generateCmd)
	generateCmd.Flags().String("out", "", "Output file (default stdout)")
}

// addGenerationFlags registers the flags shared by generate and preview.
// Flags override the config file only when explicitly set.
func addGenerationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "Path to a wildgen.yaml config file")
	f.Int("width", 0, "Grid width")
	f.Int("height", 0, "Grid height")
	f.Int64("seed", 0, "Noise seed")
	f.Int("octaves", 0, "Noise octave layers")
	f.String("name", "", "Room name prefix")
	f.String("region", "", "Region label")
	f.String("grouping", "", "Region grouping: category or flat")
}

// loadConfig loads the YAML config and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Grid.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Grid.Height, _ = f.GetInt("height")
	}
	if f.Changed("seed") {
		cfg.Grid.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("octaves") {
		cfg.Grid.Octaves, _ = f.GetInt("octaves")
	}
	if f.Changed("name") {
		cfg.Naming.RoomPrefix, _ = f.GetString("name")
	}
	if f.Changed("region") {
		cfg.Naming.RegionLabel, _ = f.GetString("region")
	}
	if f.Changed("grouping") {
		cfg.Grouping, _ = f.GetString("grouping")
	}

	return cfg, cfg.Validate()
}

// generateWorld runs the full pipeline: grid build, neighbor wiring,
// region grouping.
func generateWorld(cfg *config.Config) ([]*terrain.Room, []terrain.Region, error) {
	gen, err := terrain.NewGenerator(cfg.GeneratorOptions())
	if err != nil {
		return nil, nil, err
	}

	logger.Info("generating grid",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"seed", cfg.Grid.Seed,
		"octaves", cfg.Grid.Octaves)

	rooms := gen.Generate()
	regions := cfg.Group(rooms)

	logger.Info("generation complete", "rooms", len(rooms), "regions", len(regions))
	return rooms, regions, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.Initialize(logger.LoadConfig())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rooms, regions, err := generateWorld(cfg)
	if err != nil {
		return err
	}

	source := inform.Render(cfg.Categories, rooms, regions, cfg.Templates())

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(source+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote inform source", "path", outPath)
		return nil
	}

	fmt.Println(source)
	return nil
}
