package state

import (
	"github.com/zyedidia/generic/mapset"

	"keyquest/pkg/engine/world"
)

// Phase represents where the session is in its lifecycle
type Phase int

// Session phases. Playing is the initial phase; Won and Quit are terminal.
const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseQuit
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Item represents a collectible item carried by the player
type Item struct {
	Name string
}

// ItemSet is a set of items
type ItemSet = mapset.Set[*Item]

// Game represents the state of one play session. The game logic exclusively
// owns and mutates the grid and entity positions; renderers only read.
type Game struct {
	Grid *world.Grid

	Player world.Position
	Door   world.Position
	Key    world.Position

	DoorOpen bool
	HasKey   bool

	Phase Phase

	OwnedItems ItemSet

	Messages []string

	Seed int64 // layout seed, kept for display and reproduction
}

// NewGame creates a new game instance in the Playing phase
func NewGame() *Game {
	return &Game{
		OwnedItems: mapset.New[*Item](),
		Messages:   make([]string, 0),
		Phase:      PhasePlaying,
	}
}

// Over returns true once the session has reached a terminal phase
func (g *Game) Over() bool {
	return g.Phase == PhaseWon || g.Phase == PhaseQuit
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// PickUpItem adds an item to the player's inventory
func (g *Game) PickUpItem(item *Item) {
	g.OwnedItems.Put(item)
}

// HasItem checks if the player has a specific item
func (g *Game) HasItem(item *Item) bool {
	return g.OwnedItems.Has(item)
}
