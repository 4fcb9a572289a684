// Package config holds generator configuration loaded from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/wildgen/internal/inform"
	"github.com/lawnchairsociety/wildgen/internal/terrain"
)

// Grouping strategies for region generation.
const (
	GroupingCategory = "category"
	GroupingFlat     = "flat"
)

// ErrNoCategories is returned by Validate when the category list is empty.
// Generation cannot classify a single room without categories, so this is
// fatal rather than defaulted.
var ErrNoCategories = errors.New("config: at least one category is required")

// GridConfig holds the lattice dimensions and noise parameters.
type GridConfig struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Seed    int64 `yaml:"seed"`
	Octaves int   `yaml:"octaves"`

	// NorthPositiveY flips the vertical axis convention. Default is
	// map-style: row 0 is the northern edge.
	NorthPositiveY bool `yaml:"north_positive_y"`
}

// NamingConfig holds the naming templates.
type NamingConfig struct {
	// RoomPrefix is combined with the room's number words: "Wilderness"
	// yields "Wilderness One", "Wilderness Two", ...
	RoomPrefix string `yaml:"room_prefix"`

	// PrintedName, when set, is every room's printed name.
	PrintedName string `yaml:"printed_name"`

	// RegionLabel names the flat region, or suffixes category regions
	// ("Flat Wilds").
	RegionLabel string `yaml:"region_label"`
}

// RenderConfig holds the description templates.
type RenderConfig struct {
	Description string `yaml:"description"`
	Initial     string `yaml:"initial"`
	SayPhrase   string `yaml:"say_phrase"`
}

// Config is the full generator configuration. Immutable for the duration
// of a generation run.
type Config struct {
	Grid       GridConfig         `yaml:"grid"`
	Naming     NamingConfig       `yaml:"naming"`
	Render     RenderConfig       `yaml:"render"`
	Grouping   string             `yaml:"grouping"`
	Categories []terrain.Category `yaml:"categories"`
}

// Default returns the built-in configuration: a small wilderness with
// three grey-scale categories, matching the generator's historical
// defaults.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:   6,
			Height:  5,
			Seed:    3,
			Octaves: 3,
		},
		Naming: NamingConfig{
			RoomPrefix:  "Room",
			RegionLabel: "Region",
		},
		Render: RenderConfig{
			Description: "[" + inform.DefaultSayPhrase + "]",
		},
		Grouping: GroupingCategory,
		Categories: []terrain.Category{
			{Name: "black", Description: "The ground here is scorched black."},
			{Name: "grey", Description: "Grey stone stretches in every direction."},
			{Name: "white", Description: "Pale chalk dust covers everything."},
		},
	}
}

// Load reads configuration from a YAML file, overlaying the defaults.
// A missing file is not an error; the defaults apply. WILDGEN_SEED
// overrides the configured seed.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if seed := os.Getenv("WILDGEN_SEED"); seed != "" {
		if parsed, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Grid.Seed = parsed
		}
	}

	return cfg, nil
}

// Validate rejects configurations generation cannot run with. Dimensions
// and octaves are clamped later, not rejected here.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}
	if c.Grouping != GroupingCategory && c.Grouping != GroupingFlat {
		return fmt.Errorf("config: unknown grouping %q", c.Grouping)
	}
	return nil
}

// GeneratorOptions maps the configuration onto terrain generator options.
func (c *Config) GeneratorOptions() terrain.Options {
	return terrain.Options{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		Seed:           c.Grid.Seed,
		Octaves:        c.Grid.Octaves,
		NamePrefix:     c.Naming.RoomPrefix,
		Categories:     c.Categories,
		NorthPositiveY: c.Grid.NorthPositiveY,
	}
}

// Templates maps the configuration onto renderer templates.
func (c *Config) Templates() inform.Templates {
	return inform.Templates{
		Description: c.Render.Description,
		Initial:     c.Render.Initial,
		PrintedName: c.Naming.PrintedName,
		SayPhrase:   c.Render.SayPhrase,
	}
}

// Group applies the configured grouping strategy to the generated rooms.
func (c *Config) Group(rooms []*terrain.Room) []terrain.Region {
	if c.Grouping == GroupingFlat {
		return terrain.GroupFlat(rooms, c.Naming.RegionLabel)
	}
	return terrain.GroupByCategory(rooms, c.Categories, c.Naming.RegionLabel)
}
