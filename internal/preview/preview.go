// Package preview renders a generated grid as an ASCII map for quick
// inspection before the Inform source is used.
package preview

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/wildgen/internal/terrain"
)

// Render draws the room grid with connection glyphs, a category legend,
// and a room detail list.
//
// Each cell is 5 chars wide, 3 chars tall:
//
//	  |     (north connection)
//	-[F]-   (west-room-east)
//	  |     (south connection)
func Render(rooms []*terrain.Room, categories []terrain.Category) string {
	var output strings.Builder

	if len(rooms) == 0 {
		output.WriteString("  (No rooms to display)\n")
		return output.String()
	}

	byPos := make(map[terrain.Position]*terrain.Room, len(rooms))
	maxX, maxY := 0, 0
	for _, r := range rooms {
		byPos[r.Pos] = r
		if r.Pos.X > maxX {
			maxX = r.Pos.X
		}
		if r.Pos.Y > maxY {
			maxY = r.Pos.Y
		}
	}

	symbols := categorySymbols(categories)

	for y := 0; y <= maxY; y++ {
		// Top row (connections to the row above)
		for x := 0; x <= maxX; x++ {
			if room, ok := byPos[terrain.Position{X: x, Y: y}]; ok && connectedTo(room, byPos, x, y-1) {
				output.WriteString("  |  ")
			} else {
				output.WriteString("     ")
			}
		}
		output.WriteString("\n")

		// Middle row (west-room-east)
		for x := 0; x <= maxX; x++ {
			room, ok := byPos[terrain.Position{X: x, Y: y}]
			if !ok {
				output.WriteString("     ")
				continue
			}
			if connectedTo(room, byPos, x-1, y) {
				output.WriteString("-")
			} else {
				output.WriteString(" ")
			}
			output.WriteString("[" + symbols[room.Category] + "]")
			if connectedTo(room, byPos, x+1, y) {
				output.WriteString("-")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Bottom row (connections to the row below)
		for x := 0; x <= maxX; x++ {
			if room, ok := byPos[terrain.Position{X: x, Y: y}]; ok && connectedTo(room, byPos, x, y+1) {
				output.WriteString("  |  ")
			} else {
				output.WriteString("     ")
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("\nLegend:\n")
	for _, c := range categories {
		output.WriteString(fmt.Sprintf("  [%s] %s\n", symbols[c.Name], c.Name))
	}

	output.WriteString("\nRoom Details:\n")
	for _, r := range rooms {
		var exits []string
		for _, dir := range terrain.AllDirections() {
			if _, ok := r.Neighbors[dir]; ok {
				exits = append(exits, dir.String())
			}
		}
		details := fmt.Sprintf("  [%s] %-25s (%d,%d) %s",
			symbols[r.Category], r.Name, r.Pos.X, r.Pos.Y, r.Category)
		if len(exits) > 0 {
			details += " exits: " + strings.Join(exits, ", ")
		}
		output.WriteString(details + "\n")
	}

	return output.String()
}

// connectedTo reports whether room has a neighbor reference naming the
// room at grid position (x, y).
func connectedTo(room *terrain.Room, byPos map[terrain.Position]*terrain.Room, x, y int) bool {
	target, ok := byPos[terrain.Position{X: x, Y: y}]
	if !ok {
		return false
	}
	for _, name := range room.Neighbors {
		if name == target.Name {
			return true
		}
	}
	return false
}

// categorySymbols assigns each category a distinct single-letter symbol,
// preferring the first unused letter of its name.
func categorySymbols(categories []terrain.Category) map[string]string {
	symbols := make(map[string]string, len(categories))
	used := make(map[string]bool)

	for _, c := range categories {
		symbol := "?"
		for _, r := range strings.ToUpper(c.Name) {
			candidate := string(r)
			if !used[candidate] {
				symbol = candidate
				break
			}
		}
		used[symbol] = true
		symbols[c.Name] = symbol
	}

	return symbols
}
