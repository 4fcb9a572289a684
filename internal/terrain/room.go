// Package terrain generates a grid of connected rooms with noise-driven
// terrain categories. Construction is two-pass: every room is created
// first, then a second pass records neighbor names. Rooms are read-only
// once wiring completes.
package terrain

// Position is a zero-indexed grid coordinate, unique per room.
type Position struct {
	X, Y int
}

// Category is one terrain label with its description fragment. The fragment
// may contain Inform variation markup, which passes through untouched.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Room is one grid cell turned into a navigable location. Neighbors holds
// name references, not pointers: adjacency resolves by identifier so the
// result serializes cleanly.
type Room struct {
	Pos       Position
	Name      string
	Category  string
	Neighbors map[Direction]string
}

// Region is a named grouping of rooms. Members keep creation order so
// rendering stays deterministic.
type Region struct {
	Name    string
	Members []string
}
