package hive

import "fmt"

// MoveKind distinguishes the three Move shapes.
type MoveKind uint8

const (
	PlaceMove MoveKind = iota
	MovementMove
	PassMove
)

// Move is a small value type: a placement, a slide/climb/jump between two
// cells, or a pass. It carries no references and is cheap to copy into a
// caller-provided buffer.
type Move struct {
	Kind MoveKind
	From CellId // Movement only
	To   CellId // Place: target cell. Movement: target cell.
	Bug  Bug    // Place only
}

// Place constructs a placement Move of bug at id.
func Place(id CellId, bug Bug) Move {
	return Move{Kind: PlaceMove, To: id, Bug: bug}
}

// Movement constructs a slide/climb/jump Move from one cell to another.
func Movement(from, to CellId) Move {
	return Move{Kind: MovementMove, From: from, To: to}
}

// Pass is the null move emitted when no other move is legal.
var Pass = Move{Kind: PassMove}

func (m Move) String() string {
	switch m.Kind {
	case PlaceMove:
		return fmt.Sprintf("place(%v@%v)", m.Bug, m.To)
	case MovementMove:
		return fmt.Sprintf("move(%v->%v)", m.From, m.To)
	case PassMove:
		return "pass"
	default:
		return "?"
	}
}
