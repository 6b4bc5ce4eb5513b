package setup

import (
	"testing"

	"keyquest/pkg/engine/world"
)

func TestParseDimension(t *testing.T) {
	cases := []struct {
		name    string
		answer  string
		min     int
		max     int
		want    int
		wantErr bool
	}{
		{"Minimum", "10", world.MinWidth, world.MaxWidth, 10, false},
		{"Maximum", "120", world.MinWidth, world.MaxWidth, 120, false},
		{"Whitespace", "  24 ", world.MinHeight, world.MaxHeight, 24, false},
		{"BelowRange", "9", world.MinWidth, world.MaxWidth, 0, true},
		{"AboveRange", "121", world.MinWidth, world.MaxWidth, 0, true},
		{"NotANumber", "wide", world.MinWidth, world.MaxWidth, 0, true},
		{"Empty", "", world.MinWidth, world.MaxWidth, 0, true},
		{"Float", "12.5", world.MinWidth, world.MaxWidth, 0, true},
		{"Negative", "-12", world.MinWidth, world.MaxWidth, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDimension(tc.answer, tc.min, tc.max)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDimension(%q) error = nil, want error", tc.answer)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDimension(%q) error: %v", tc.answer, err)
			}
			if got != tc.want {
				t.Errorf("ParseDimension(%q) = %d, want %d", tc.answer, got, tc.want)
			}
		})
	}
}
