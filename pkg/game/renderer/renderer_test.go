package renderer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"

	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/state"
)

func TestTileIcon(t *testing.T) {
	cases := []struct {
		tile world.Tile
		want string
	}{
		{world.TileWall, IconWall},
		{world.TileFloor, IconFloor},
		{world.TileKey, IconKey},
		{world.TileDoorClosed, IconDoorClosed},
		{world.TileDoorOpen, IconDoorOpen},
		{world.TilePlayer, PlayerIcon},
		{world.TilePlayerOnDoor, PlayerIcon},
	}

	for _, tc := range cases {
		if got := TileIcon(tc.tile); got != tc.want {
			t.Errorf("TileIcon(%v) = %q, want %q", tc.tile, got, tc.want)
		}
	}
}

func TestRenderTile_MatchesIconAfterStyling(t *testing.T) {
	InitColors()

	for _, tile := range []world.Tile{
		world.TileWall, world.TileFloor, world.TileKey,
		world.TileDoorClosed, world.TileDoorOpen,
		world.TilePlayer, world.TilePlayerOnDoor,
	} {
		styled := RenderTile(tile)
		if got := color.ClearCode(styled); got != TileIcon(tile) {
			t.Errorf("RenderTile(%v) stripped = %q, want %q", tile, got, TileIcon(tile))
		}
	}
}

func TestFormatString_Markup(t *testing.T) {
	InitColors()

	cases := []struct {
		name string
		msg  string
		args []any
		want string
	}{
		{"Plain", "hello", nil, "hello"},
		{"Sprintf", "row %d", []any{7}, "row 7"},
		{"Item", "found ITEM{key}", nil, "found key"},
		{"Door", "the DOOR{door} opens", nil, "the door opens"},
		{"Action", "press ACTION{q}", nil, "press q"},
		{"Denied", "DENIED{locked}", nil, "locked"},
		{"UnknownFunctionKept", "FOO{bar}", nil, "FOO{bar}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := color.ClearCode(FormatString(tc.msg, tc.args...))
			if got != tc.want {
				t.Errorf("FormatString(%q) stripped = %q, want %q", tc.msg, got, tc.want)
			}
		})
	}
}

func TestPaneHeader_BoundaryWidths(t *testing.T) {
	label := " Messages "

	cases := []struct {
		name      string
		width     int
		wantRunes int
	}{
		// Smallest legal room width equals the label length, which used to
		// drive the trailing dash count negative.
		{"SmallestRoom", 10, 11},
		{"NarrowerThanLabel", 4, 11},
		{"LargestRoom", 120, 120},
		{"Typical", 30, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := PaneHeader(label, tc.width)

			if got := utf8.RuneCountInString(header); got != tc.wantRunes {
				t.Errorf("PaneHeader(%q, %d) length = %d runes, want %d",
					label, tc.width, got, tc.wantRunes)
			}
			if !strings.Contains(header, label) {
				t.Errorf("PaneHeader(%q, %d) = %q, missing label", label, tc.width, header)
			}
		})
	}
}

func TestPaneHeader_MeasuresLabelInRunes(t *testing.T) {
	// Translated labels may be non-ASCII; sizing must count runes, not bytes
	header := PaneHeader(" Сводка ", 20)

	if got := utf8.RuneCountInString(header); got != 20 {
		t.Errorf("PaneHeader rune length = %d, want 20", got)
	}
}

func TestStatusLine_ReflectsFlags(t *testing.T) {
	InitColors()

	g := state.NewGame()

	plain := color.ClearCode(StatusLine(g))
	if plain != "Key: not found | Door: locked" {
		t.Errorf("fresh status = %q", plain)
	}

	g.HasKey = true
	g.DoorOpen = true

	plain = color.ClearCode(StatusLine(g))
	if plain != "Key: carried | Door: open" {
		t.Errorf("post-pickup status = %q", plain)
	}
}

func TestSetJoin(t *testing.T) {
	g := state.NewGame()

	if got := SetJoin(g.OwnedItems); got != "" {
		t.Errorf("SetJoin(empty) = %q, want empty", got)
	}

	g.PickUpItem(&state.Item{Name: "Door Key"})

	if got := SetJoin(g.OwnedItems); got != "Door Key" {
		t.Errorf("SetJoin(one item) = %q, want %q", got, "Door Key")
	}
}
