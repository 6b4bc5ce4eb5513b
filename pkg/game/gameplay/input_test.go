package gameplay

import (
	"testing"

	engineinput "keyquest/pkg/engine/input"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/state"
)

func TestProcessIntent_NoneConsumesNothing(t *testing.T) {
	g := makeScenarioGame(t)
	before := g.Player

	changes := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNone})

	if changes != nil {
		t.Errorf("ProcessIntent(None) = %v, want nil", changes)
	}
	if g.Player != before {
		t.Errorf("ProcessIntent(None) moved player %v -> %v", before, g.Player)
	}
}

func TestProcessIntent_QuitEndsSession(t *testing.T) {
	g := makeScenarioGame(t)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})

	if g.Phase != state.PhaseQuit {
		t.Errorf("phase = %v after quit intent, want Quit", g.Phase)
	}
}

func TestProcessIntent_AllFourDirections(t *testing.T) {
	dirs := []struct {
		name   string
		action engineinput.Action
		want   world.Position
	}{
		{"North", engineinput.ActionMoveNorth, world.Position{X: 2, Y: 1}},
		{"South", engineinput.ActionMoveSouth, world.Position{X: 2, Y: 3}},
		{"East", engineinput.ActionMoveEast, world.Position{X: 3, Y: 2}},
		{"West", engineinput.ActionMoveWest, world.Position{X: 1, Y: 2}},
	}

	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			g := makeScenarioGame(t)

			changes := ProcessIntent(g, engineinput.Intent{Action: d.action})

			if g.Player != d.want {
				t.Errorf("after Move%s: player = %v, want %v", d.name, g.Player, d.want)
			}
			if len(changes) != 2 {
				t.Errorf("plain move emitted %d changes, want 2 (vacate + occupy)", len(changes))
			}
		})
	}
}

func TestProcessIntent_KeyPickupLogsMessage(t *testing.T) {
	g := makeScenarioGame(t)
	g.ClearMessages()

	walk(t, g, world.East, world.East, world.East, world.East, world.East)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveSouth})

	if !g.HasKey {
		t.Fatal("hasKey = false after key pickup intent")
	}
	if len(g.Messages) == 0 {
		t.Error("key pickup logged no message")
	}
}

func TestProcessIntent_RejectedMoveIsSilent(t *testing.T) {
	g := makeScenarioGame(t)
	g.ClearMessages()

	walk(t, g, world.West)
	changes := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveWest})

	if len(changes) != 0 {
		t.Errorf("rejected move emitted %d changes, want 0", len(changes))
	}
	if len(g.Messages) != 0 {
		t.Errorf("rejected move logged %d messages, want 0", len(g.Messages))
	}
}
