// path: internal/game/session.go
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ruleset is the board-facing contract a session drives a game through.
// Board, CheckersBoard and ExtendedBoard satisfy it.
type Ruleset interface {
	CheckMove(from, to Cell) bool
	MakeMove(from, to Cell) MoveReport
	CanCastle(c Color) bool
	Castle(c Color)
	Undo() error
	Evaluate() Verdict
	ConsumeChainFlag(at Cell) bool
	PieceAt(at Cell) *Piece
	Snapshot() Grid
}

// NewRuleset builds the starting board for a variant.
func NewRuleset(v Variant) Ruleset {
	switch v {
	case VariantCheckers:
		return NewCheckersBoard()
	case VariantExtended:
		return NewExtendedBoard()
	default:
		return NewBoard()
	}
}

// Decision identifies which yes/no offer a session is making.
type Decision uint8

const (
	DecideCastle Decision = iota
	DecideUndo
)

func (d Decision) String() string {
	if d == DecideCastle {
		return "castle"
	}
	return "undo"
}

// MoveSource supplies the next requested move for a player. Errors that
// wrap ErrInvalidCoordinate are recoverable and re-prompt the same
// player; any other error aborts the session.
type MoveSource interface {
	NextMove(player Color) (Move, error)
}

// DecisionSource answers the session's yes/no offers.
type DecisionSource interface {
	Confirm(player Color, what Decision) (bool, error)
}

// Display receives board states and player-facing announcements.
type Display interface {
	ShowBoard(g Grid)
	Announce(msg string)
}

// Session runs one game from setup to the terminal verdict: it alternates
// the colors and folds in the special turn branches, castling offers,
// undo offers on the undo-capable variants, and chain continuations after
// captures that keep the turn.
type Session struct {
	id      string
	variant Variant
	board   Ruleset
	current Color
	moves   MoveSource
	decide  DecisionSource
	display Display
	log     *zap.SugaredLogger
}

// NewSession wires a fresh board for the variant to the player-facing
// collaborators. White moves first.
func NewSession(v Variant, moves MoveSource, decide DecisionSource, display Display, log *zap.SugaredLogger) *Session {
	return &Session{
		id:      uuid.NewString(),
		variant: v,
		board:   NewRuleset(v),
		current: White,
		moves:   moves,
		decide:  decide,
		display: display,
		log:     log,
	}
}

// Result reports how a finished session ended. The player left to move in
// the terminal position is the loser.
type Result struct {
	Loser Color
	Moves int
}

// Run drives the turn loop until the board reports a terminal position or
// a collaborator fails. Recoverable input problems re-enter the loop for
// the same player; only the terminal position or a collaborator breakdown
// ends it.
func (s *Session) Run() (Result, error) {
	s.log.Infow("session started", "session", s.id, "variant", s.variant.String())
	moves := 0
	for {
		s.display.ShowBoard(s.board.Snapshot())

		verdict := s.board.Evaluate()
		if verdict.InCheck {
			s.display.Announce(fmt.Sprintf("The %s king is in check!", verdict.Checked))
		}
		if verdict.Over {
			s.display.Announce(fmt.Sprintf("Game over: player %s loses.", s.current))
			s.log.Infow("session finished", "session", s.id, "loser", s.current.String(), "moves", moves)
			return Result{Loser: s.current, Moves: moves}, nil
		}

		if s.board.CanCastle(s.current) {
			yes, err := s.decide.Confirm(s.current, DecideCastle)
			if err != nil {
				return Result{}, fmt.Errorf("castle decision: %w", err)
			}
			if yes {
				s.board.Castle(s.current)
				s.log.Infow("castled", "session", s.id, "player", s.current.String())
				s.current = s.current.Opposite()
				continue
			}
		}

		if s.variant.OffersUndo() {
			yes, err := s.decide.Confirm(s.current, DecideUndo)
			if err != nil {
				return Result{}, fmt.Errorf("undo decision: %w", err)
			}
			if yes {
				if err := s.board.Undo(); err != nil {
					s.display.Announce("Nothing to undo yet.")
				} else {
					s.display.Announce("Move undone.")
					s.log.Infow("move undone", "session", s.id, "player", s.current.String())
					s.current = s.current.Opposite()
					continue
				}
			}
		}

		mv, err := s.moves.NextMove(s.current)
		if err != nil {
			if errors.Is(err, ErrInvalidCoordinate) {
				s.display.Announce(fmt.Sprintf("%s, try again.", capitalize(err.Error())))
				continue
			}
			return Result{}, fmt.Errorf("move input: %w", err)
		}

		if !s.board.CheckMove(mv.From, mv.To) {
			reason := ErrIllegalMove
			if s.board.PieceAt(mv.From) == nil {
				reason = ErrMissingSourcePiece
			}
			s.display.Announce(fmt.Sprintf("Move %s rejected: %s.", mv, reason))
			s.log.Debugw("move rejected",
				"session", s.id, "player", s.current.String(), "move", mv.String(), "reason", reason.Error())
			continue
		}

		report := s.board.MakeMove(mv.From, mv.To)
		moves++
		s.log.Infow("move applied",
			"session", s.id, "player", s.current.String(), "move", mv.String(),
			"captured", report.Captured, "promoted", report.Promoted)
		if report.Captured {
			s.display.Announce(fmt.Sprintf("Player %s captures an enemy piece.", s.current))
		}
		if report.Promoted {
			s.display.Announce(fmt.Sprintf("A %s man is promoted to a flier!", s.current))
		}

		if s.board.ConsumeChainFlag(mv.To) {
			s.display.Announce(fmt.Sprintf("Player %s moves again.", s.current))
			continue
		}
		s.current = s.current.Opposite()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
