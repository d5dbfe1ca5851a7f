package tictactoe

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

type EventType string

const (
	EventMoveApplied EventType = "move_applied"
	EventGameWon     EventType = "game_won"
	EventGameDrawn   EventType = "game_drawn"
	EventGameReset   EventType = "game_reset"
)

// Event - a transition of the game, delivered to listeners right after it happens.
type Event struct {
	Type    EventType      `json:"event"`
	RoundID string         `json:"round_id"`
	Mark    entity.Mark    `json:"mark,omitempty"`
	Move    entity.Move    `json:"move"`
	Outcome entity.Outcome `json:"outcome"`
}

// Listener - is called synchronously on the goroutine that drives the controller.
type Listener func(event Event)
