package terrain

import (
	"errors"
	"math"

	"github.com/lawnchairsociety/wildgen/internal/names"
	"github.com/lawnchairsociety/wildgen/internal/noise"
	"github.com/lawnchairsociety/wildgen/internal/scale"
)

// ErrNoCategories is returned when generation is configured with an empty
// category set. Without at least one category no room can be classified,
// so this fails fast instead of producing corrupt output.
var ErrNoCategories = errors.New("terrain: at least one category is required")

// Options configures a Generator. Width and height below 1 are clamped to
// 1, octaves below 1 to 1; an empty category list is a fatal error.
type Options struct {
	Width          int
	Height         int
	Seed           int64
	Octaves        int
	NamePrefix     string
	Categories     []Category
	NorthPositiveY bool
}

// Generator builds a room grid from a noise field. The field is created
// once here and shared by every sample during the run.
type Generator struct {
	opts  Options
	field *noise.Field
}

// NewGenerator validates and clamps the options and builds the noise field.
func NewGenerator(opts Options) (*Generator, error) {
	if len(opts.Categories) == 0 {
		return nil, ErrNoCategories
	}
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	if opts.Octaves < 1 {
		opts.Octaves = 1
	}
	if opts.NamePrefix == "" {
		opts.NamePrefix = "Room"
	}

	return &Generator{
		opts:  opts,
		field: noise.New(opts.Seed, opts.Octaves),
	}, nil
}

// Generate produces the full room grid in row-major order, then wires
// cardinal neighbors in a second pass. Pure given the options: the same
// inputs always return the same rooms.
func (g *Generator) Generate() []*Room {
	rooms := g.buildRooms()
	g.wireNeighbors(rooms)
	return rooms
}

// buildRooms walks the lattice height-outer, width-inner with a 1-based
// linear index, sampling the field at (col/width + 1, row/height + 1).
// The +1 keeps samples away from the origin, where some noise
// implementations return a fixed value.
func (g *Generator) buildRooms() []*Room {
	w, h := g.opts.Width, g.opts.Height
	rooms := make([]*Room, 0, w*h)

	index := 1
	for row := 1; row <= h; row++ {
		for col := 1; col <= w; col++ {
			value := g.field.Sample(
				float64(col)/float64(w)+1,
				float64(row)/float64(h)+1,
			)

			rooms = append(rooms, &Room{
				Pos:       Position{X: col - 1, Y: row - 1},
				Name:      names.Room(g.opts.NamePrefix, index),
				Category:  g.categoryFor(value),
				Neighbors: make(map[Direction]string),
			})
			index++
		}
	}

	return rooms
}

// categoryFor maps a biased noise value onto a category index. Rounding is
// math.Round, half away from zero; the index is clamped so noise excursions
// past [0,1] still land on a valid category. A single category degenerates
// to index 0 for every room.
func (g *Generator) categoryFor(value float64) string {
	count := len(g.opts.Categories)
	idx := int(math.Round(scale.Unit(value, 0, float64(count-1))))
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	return g.opts.Categories[idx].Name
}

// wireNeighbors records name references between grid-adjacent rooms. It
// runs only after every room exists, resolving adjacency through a
// position index rather than scanning the slice per cell. Edge cells
// simply omit the missing directions.
func (g *Generator) wireNeighbors(rooms []*Room) {
	byPos := make(map[Position]*Room, len(rooms))
	for _, r := range rooms {
		byPos[r.Pos] = r
	}

	for _, r := range rooms {
		for _, dir := range AllDirections() {
			dx, dy := dir.Offset(g.opts.NorthPositiveY)
			neighbor, ok := byPos[Position{X: r.Pos.X + dx, Y: r.Pos.Y + dy}]
			if ok {
				r.Neighbors[dir] = neighbor.Name
			}
		}
	}
}
