package inform

import (
	"strings"
	"testing"

	"github.com/lawnchairsociety/wildgen/internal/terrain"
)

func TestRenderFullDocument(t *testing.T) {
	categories := []terrain.Category{
		{Name: "flat", Description: "The land here is level."},
		{Name: "treed", Description: "Trees crowd in close."},
	}
	rooms := []*terrain.Room{
		{
			Pos: terrain.Position{X: 0, Y: 0}, Name: "Wilderness One", Category: "flat",
			Neighbors: map[terrain.Direction]string{terrain.East: "Wilderness Two"},
		},
		{
			Pos: terrain.Position{X: 1, Y: 0}, Name: "Wilderness Two", Category: "treed",
			Neighbors: map[terrain.Direction]string{terrain.West: "Wilderness One"},
		},
	}
	regions := terrain.GroupByCategory(rooms, categories, "Wilds")

	got := Render(categories, rooms, regions, Templates{PrintedName: "Wilderness"})

	want := strings.Join([]string{
		`A room can be flat or treed. A room is usually flat.`,
		"To say terrain-description:\n\tif the location is flat, say \"The land here is level.\";\n\totherwise if the location is treed, say \"Trees crowd in close.\".",
		`Wilderness One is a room. The description is "[terrain-description]". The printed name is "Wilderness". It is flat.`,
		`Wilderness Two is a room. The description is "[terrain-description]". The printed name is "Wilderness". It is treed. Wilderness Two is east of Wilderness One.`,
		`Flat Wilds is a region. Wilderness One is in Flat Wilds.`,
		`Treed Wilds is a region. Wilderness Two is in Treed Wilds.`,
	}, "\n\n")

	if got != want {
		t.Errorf("Render mismatch.\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestRenderCategoryLineThreeWay(t *testing.T) {
	categories := []terrain.Category{{Name: "flat"}, {Name: "hilly"}, {Name: "treed"}}
	rooms := []*terrain.Room{{Name: "Room One", Category: "flat"}}

	got := Render(categories, rooms, nil, Templates{})
	first := strings.Split(got, "\n\n")[0]

	want := "A room can be flat, hilly, or treed. A room is usually flat."
	if first != want {
		t.Errorf("first line = %q, want %q", first, want)
	}
}

func TestRenderInitialVariant(t *testing.T) {
	categories := []terrain.Category{{Name: "flat", Description: "Level ground."}}
	rooms := []*terrain.Room{{Name: "Room One", Category: "flat"}}

	got := Render(categories, rooms, nil, Templates{
		Initial: "You push into untracked country.",
	})

	want := `The description is "[one of]You push into untracked country. [or][stopping][terrain-description]".`
	if !strings.Contains(got, want) {
		t.Errorf("output missing initial description variant:\n%s", got)
	}
}

func TestRenderFallbackFragment(t *testing.T) {
	categories := []terrain.Category{{Name: "flat"}, {Name: "hilly"}}
	rooms := []*terrain.Room{{Name: "Room One", Category: "flat"}}

	got := Render(categories, rooms, nil, Templates{})
	if !strings.Contains(got, `say "The terrain here is hilly."`) {
		t.Errorf("missing fallback description fragment:\n%s", got)
	}
}

func TestRenderNoPrintedName(t *testing.T) {
	categories := []terrain.Category{{Name: "flat", Description: "x"}}
	rooms := []*terrain.Room{{Name: "Room One", Category: "flat"}}

	got := Render(categories, rooms, nil, Templates{})
	if strings.Contains(got, "printed name") {
		t.Errorf("printed name rendered without being configured:\n%s", got)
	}
}

func TestRenderEachConnectionOnce(t *testing.T) {
	// Both rooms reference each other, but the link must be declared once,
	// from the later room back to the earlier one.
	categories := []terrain.Category{{Name: "flat", Description: "x"}}
	rooms := []*terrain.Room{
		{Name: "Room One", Category: "flat",
			Neighbors: map[terrain.Direction]string{terrain.East: "Room Two"}},
		{Name: "Room Two", Category: "flat",
			Neighbors: map[terrain.Direction]string{terrain.West: "Room One"}},
	}

	got := Render(categories, rooms, nil, Templates{})

	if !strings.Contains(got, "Room Two is east of Room One.") {
		t.Errorf("missing connection statement:\n%s", got)
	}
	if strings.Contains(got, "Room One is west of Room Two") {
		t.Errorf("connection declared twice:\n%s", got)
	}
}

func TestRenderGeneratedScenario(t *testing.T) {
	// width=2, height=1: two rooms named with the first two number words,
	// one east of the other, and the category line leads the output.
	gen, err := terrain.NewGenerator(terrain.Options{
		Width:      2,
		Height:     1,
		Seed:       3,
		Octaves:    3,
		NamePrefix: "Wilderness",
		Categories: []terrain.Category{
			{Name: "flat", Description: "The land here is level."},
			{Name: "hilly", Description: "Low hills roll away."},
		},
	})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	rooms := gen.Generate()
	regions := terrain.GroupFlat(rooms, "Wilds")
	got := Render(rooms2categories(), rooms, regions, Templates{})

	lines := strings.Split(got, "\n\n")
	if lines[0] != "A room can be flat or hilly. A room is usually flat." {
		t.Errorf("first line = %q", lines[0])
	}

	if !strings.Contains(got, "Wilderness One is a room.") {
		t.Error("missing Wilderness One declaration")
	}
	if !strings.Contains(got, "Wilderness Two is east of Wilderness One.") {
		t.Error("missing east-of connection")
	}
	if !strings.Contains(got, "Wilds is a region. Wilderness One and Wilderness Two are in Wilds.") {
		t.Errorf("missing region statement:\n%s", got)
	}
}

func rooms2categories() []terrain.Category {
	return []terrain.Category{
		{Name: "flat", Description: "The land here is level."},
		{Name: "hilly", Description: "Low hills roll away."},
	}
}

func TestRenderDeterministic(t *testing.T) {
	opts := terrain.Options{
		Width: 5, Height: 4, Seed: 42, Octaves: 3,
		NamePrefix: "Wilderness",
		Categories: rooms2categories(),
	}

	render := func() string {
		gen, err := terrain.NewGenerator(opts)
		if err != nil {
			t.Fatalf("NewGenerator failed: %v", err)
		}
		rooms := gen.Generate()
		regions := terrain.GroupByCategory(rooms, opts.Categories, "Wilds")
		return Render(opts.Categories, rooms, regions, Templates{PrintedName: "Wilderness"})
	}

	if render() != render() {
		t.Error("two runs with identical inputs produced different output")
	}
}
