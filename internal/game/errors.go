// path: internal/game/errors.go
package game

import "errors"

// Sentinel errors for the recoverable failures of the turn loop. None of
// them ends a session; each returns control to the same player.
var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrIllegalMove        = errors.New("illegal move")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrMissingSourcePiece = errors.New("no piece on the source cell")
)
