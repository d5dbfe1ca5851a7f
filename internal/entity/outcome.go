package entity

import "fmt"

type Result string

const (
	ResultInProgress Result = "in_progress"
	ResultWin        Result = "win"
	ResultDraw       Result = "draw"
)

// Outcome - the state of a game: in progress, won by Winner, or drawn.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Result: ResultInProgress}
}

func Win(mark Mark) Outcome {
	return Outcome{Result: ResultWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultInProgress
}

func (that Outcome) IsWin() bool {
	return that.Result == ResultWin
}

func (that Outcome) IsDraw() bool {
	return that.Result == ResultDraw
}

func (that Outcome) String() string {
	if that.IsWin() {
		return fmt.Sprintf("%s(%s)", that.Result, that.Winner)
	}

	return string(that.Result)
}
