package terrain

import (
	"strings"

	"github.com/lawnchairsociety/wildgen/internal/names"
)

// GroupByCategory partitions rooms into one region per category that has
// at least one member. Categories iterate in configured order and members
// keep creation order; categories no room selected are skipped entirely.
// Region names combine the title-cased category with the region label.
func GroupByCategory(rooms []*Room, categories []Category, label string) []Region {
	var regions []Region

	for _, cat := range categories {
		var members []string
		for _, r := range rooms {
			if r.Category == cat.Name {
				members = append(members, r.Name)
			}
		}
		if len(members) == 0 {
			continue
		}

		regions = append(regions, Region{
			Name:    strings.TrimSpace(names.Title(cat.Name) + " " + label),
			Members: members,
		})
	}

	return regions
}

// GroupFlat places every room in a single region named by the label.
func GroupFlat(rooms []*Room, label string) []Region {
	if len(rooms) == 0 {
		return nil
	}
	if label == "" {
		label = "Region"
	}

	members := make([]string, 0, len(rooms))
	for _, r := range rooms {
		members = append(members, r.Name)
	}

	return []Region{{Name: label, Members: members}}
}
