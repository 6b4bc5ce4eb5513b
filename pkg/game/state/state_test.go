package state

import (
	"fmt"
	"testing"
)

func TestNewGame_StartsPlaying(t *testing.T) {
	g := NewGame()

	if g.Phase != PhasePlaying {
		t.Errorf("NewGame().Phase = %v, want Playing", g.Phase)
	}
	if g.Over() {
		t.Error("NewGame().Over() = true, want false")
	}
	if g.HasKey || g.DoorOpen {
		t.Errorf("fresh game flags: hasKey=%v doorOpen=%v, want both false", g.HasKey, g.DoorOpen)
	}
	if g.OwnedItems.Size() != 0 {
		t.Errorf("fresh game inventory size = %d, want 0", g.OwnedItems.Size())
	}
}

func TestGame_Over(t *testing.T) {
	for _, phase := range []Phase{PhaseWon, PhaseQuit} {
		g := NewGame()
		g.Phase = phase
		if !g.Over() {
			t.Errorf("Over() with phase %v = false, want true", phase)
		}
	}
}

func TestAddMessage_CapsHistory(t *testing.T) {
	g := NewGame()

	for i := 0; i < 9; i++ {
		g.AddMessage(fmt.Sprintf("message %d", i))
	}

	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "message 4" {
		t.Errorf("oldest kept message = %q, want %q", g.Messages[0], "message 4")
	}
	if g.Messages[4] != "message 8" {
		t.Errorf("newest message = %q, want %q", g.Messages[4], "message 8")
	}

	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(g.Messages))
	}
}

func TestPickUpItem(t *testing.T) {
	g := NewGame()
	key := &Item{Name: "Door Key"}

	if g.HasItem(key) {
		t.Error("HasItem before pickup = true, want false")
	}

	g.PickUpItem(key)

	if !g.HasItem(key) {
		t.Error("HasItem after pickup = false, want true")
	}
	if g.OwnedItems.Size() != 1 {
		t.Errorf("inventory size = %d, want 1", g.OwnedItems.Size())
	}
}

func TestPhase_String(t *testing.T) {
	cases := map[Phase]string{
		PhasePlaying: "Playing",
		PhaseWon:     "Won",
		PhaseQuit:    "Quit",
		Phase(42):    "Unknown",
	}

	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
