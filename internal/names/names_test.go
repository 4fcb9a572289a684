package names

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "one"},
		{2, "two"},
		{7, "seven"},
		{10, "ten"},
		{12, "twelve"},
	}

	for _, tc := range tests {
		if got := Number(tc.n); got != tc.want {
			t.Errorf("Number(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestRoom(t *testing.T) {
	tests := []struct {
		prefix string
		index  int
		want   string
	}{
		{"Wilderness", 1, "Wilderness One"},
		{"wilderness", 7, "Wilderness Seven"},
		{"Room", 12, "Room Twelve"},
		{"dark forest", 3, "Dark Forest Three"},
	}

	for _, tc := range tests {
		if got := Room(tc.prefix, tc.index); got != tc.want {
			t.Errorf("Room(%q, %d) = %q, want %q", tc.prefix, tc.index, got, tc.want)
		}
	}
}

func TestRoomIdentifiersDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 1; i <= 40; i++ {
		id := Room("Wilderness", i)
		if seen[id] {
			t.Fatalf("duplicate identifier %q at index %d", id, i)
		}
		seen[id] = true
	}
}
