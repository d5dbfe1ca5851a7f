package apperror

import "errors"

var (
	ErrInvalidCoordinate      = errors.New("invalid cell coordinate")
	ErrCellOccupied           = errors.New("cell is already occupied")
	ErrInvalidMark            = errors.New("invalid player mark")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrGameFinished           = errors.New("game is already finished")
	ErrNoAvailableMoves       = errors.New("no available moves")
)
