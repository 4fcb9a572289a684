// Package inform serializes generated terrain into Inform 7 source.
package inform

import (
	"strings"

	"github.com/lawnchairsociety/wildgen/internal/terrain"
	"github.com/lawnchairsociety/wildgen/internal/text"
)

// DefaultSayPhrase is the say phrase the description template references
// when none is configured.
const DefaultSayPhrase = "terrain-description"

// Templates holds the configurable text fragments woven into the output.
// Fragments may carry Inform variation markup ("[one of]...[at random]");
// the renderer passes it through untouched.
type Templates struct {
	// Description is the quoted room description, typically a reference
	// to the say phrase: "[terrain-description]".
	Description string

	// Initial, when set, is shown the first time a room is described.
	Initial string

	// PrintedName, when set, is declared as every room's printed name.
	// Giving all wilderness rooms the same printed name keeps them
	// indistinguishable to the player.
	PrintedName string

	// SayPhrase names the To say phrase that chains the per-category
	// description fragments.
	SayPhrase string
}

func (t Templates) sayPhrase() string {
	if t.SayPhrase == "" {
		return DefaultSayPhrase
	}
	return t.SayPhrase
}

func (t Templates) description() string {
	desc := t.Description
	if desc == "" {
		desc = "[" + t.sayPhrase() + "]"
	}
	if t.Initial != "" {
		desc = "[one of]" + t.Initial + " [or][stopping]" + desc
	}
	return desc
}

// Render produces the full Inform 7 source for the generated world:
// the category declaration, the conditional description phrase, one
// statement block per room, and one per region, separated by blank lines.
// Output is deterministic for identical inputs.
func Render(categories []terrain.Category, rooms []*terrain.Room, regions []terrain.Region, tpl Templates) string {
	blocks := []string{
		categoryLine(categories),
		sayPhraseBlock(categories, tpl),
	}

	declared := make(map[string]int, len(rooms))
	for i, room := range rooms {
		declared[room.Name] = i
	}

	for i, room := range rooms {
		blocks = append(blocks, roomBlock(room, i, declared, tpl))
	}

	for _, region := range regions {
		blocks = append(blocks, regionBlock(region))
	}

	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n\n")
}

// categoryLine declares the room attribute and its default, the first
// configured category: "A room can be flat or hilly. A room is usually
// flat."
func categoryLine(categories []terrain.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return "A room can be " + text.Join(names, "or") + ". A room is usually " + names[0] + "."
}

// sayPhraseBlock chains one conditional per category, keyed on the
// location's category. Description fragments render verbatim.
func sayPhraseBlock(categories []terrain.Category, tpl Templates) string {
	var b strings.Builder
	b.WriteString("To say " + tpl.sayPhrase() + ":")

	for i, c := range categories {
		desc := c.Description
		if desc == "" {
			desc = "The terrain here is " + c.Name + "."
		}

		b.WriteString("\n\t")
		if i > 0 {
			b.WriteString("otherwise ")
		}
		b.WriteString("if the location is " + c.Name + ", say \"" + desc + "\"")
		if i == len(categories)-1 {
			b.WriteString(".")
		} else {
			b.WriteString(";")
		}
	}

	return b.String()
}

// roomBlock emits the room's declaration, description, printed name,
// category, and its map connections. Only connections to rooms declared
// earlier are stated, so each link appears exactly once.
func roomBlock(room *terrain.Room, index int, declared map[string]int, tpl Templates) string {
	var b strings.Builder
	b.WriteString(room.Name + " is a room.")
	b.WriteString(" The description is \"" + tpl.description() + "\".")
	if tpl.PrintedName != "" {
		b.WriteString(" The printed name is \"" + tpl.PrintedName + "\".")
	}
	b.WriteString(" It is " + room.Category + ".")

	var relations []string
	for _, dir := range []terrain.Direction{terrain.West, terrain.North, terrain.East, terrain.South} {
		neighbor, ok := room.Neighbors[dir]
		if !ok {
			continue
		}
		if pos, ok := declared[neighbor]; ok && pos < index {
			relations = append(relations, dir.Opposite().String()+" of "+neighbor)
		}
	}

	if len(relations) > 0 {
		b.WriteString(" " + room.Name + " is " + text.Join(relations, "and") + ".")
	}

	return b.String()
}

// regionBlock declares a region and its membership. Empty regions are the
// caller's concern; grouping never produces them.
func regionBlock(region terrain.Region) string {
	verb := text.IsAre(len(region.Members))
	return region.Name + " is a region. " +
		text.Join(region.Members, "and") + " " + verb + " in " + region.Name + "."
}
