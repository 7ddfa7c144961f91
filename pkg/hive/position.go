package hive

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Position is the move-generator's core state: the adjacency arena, each
// color's remaining reserve, the queen-cell cache, the half-move counter
// and the incremental Zobrist hash plus its history. It is a plain value
// with no locks or background work; higher layers clone it (by value) to
// parallelize search.
type Position struct {
	cells     []cell
	idOfCoord map[Coord]CellId
	coordOfID []Coord

	reserve   [NumColors][NumBugs]uint8
	queenCell [NumColors]CellId

	moveNum     uint16
	hash        ZobristHash
	hashHistory []ZobristHash
}

// NewPosition returns an empty board with Black to move. The first two
// placement cells, (0,0) and (1,0), are pre-allocated, matching the
// coordinate convention at the external boundary (spec.md §6): the first
// Black placement is forced at (0,0), the first White placement at (1,0).
func NewPosition() *Position {
	p := &Position{
		cells:     make([]cell, 1), // index 0 is the unassigned sentinel
		idOfCoord: make(map[Coord]CellId),
		coordOfID: make([]Coord, 1),
	}
	for b := ZeroBug; b < NumBugs; b++ {
		p.reserve[Black][b] = startingReserve[b]
		p.reserve[White][b] = startingReserve[b]
	}
	p.idFor(Coord{0, 0})
	p.idFor(Coord{1, 0})
	return p
}

// Clone returns an independent deep-enough copy: the arena, reserve and
// history are copied by value, so mutating the clone never aliases the
// original. This is how the search layer parallelizes over subtrees.
func (p *Position) Clone() *Position {
	c := *p
	c.cells = append([]cell(nil), p.cells...)
	c.idOfCoord = make(map[Coord]CellId, len(p.idOfCoord))
	for k, v := range p.idOfCoord {
		c.idOfCoord[k] = v
	}
	c.coordOfID = append([]Coord(nil), p.coordOfID...)
	c.hashHistory = append([]ZobristHash(nil), p.hashHistory...)
	return &c
}

// ToMove returns the color to move: parity of the half-move counter.
// Black moves first (move 0).
func (p *Position) ToMove() Color {
	if p.moveNum%2 == 0 {
		return Black
	}
	return White
}

// Remaining returns the unplaced reserve count for (color, bug).
func (p *Position) Remaining(c Color, b Bug) uint8 {
	return p.reserve[c][b]
}

// QueenCell returns the color's queen cell, if placed.
func (p *Position) QueenCell(c Color) lang.Optional[CellId] {
	if p.queenCell[c] == unassigned {
		return lang.Optional[CellId]{}
	}
	return lang.Some(p.queenCell[c])
}

// QueensSurrounded returns, for each color, the count of occupied
// neighbors of that color's queen cell (0 if the queen is unplaced, since
// an unassigned queen cell has no neighbors allocated).
func (p *Position) QueensSurrounded() [NumColors]int {
	var out [NumColors]int
	for c := ZeroColor; c < NumColors; c++ {
		qid := p.queenCell[c]
		if qid == unassigned {
			continue
		}
		for _, adj := range p.cellAt(qid).neighbors {
			if p.isOccupied(adj) {
				out[c]++
			}
		}
	}
	return out
}

// QueenRequired reports whether the side to move must place its queen
// this turn: standard Hive requires the queen placed by each player's
// fourth placement, i.e. half-move 6 for Black or 7 for White.
func (p *Position) QueenRequired() bool {
	return p.moveNum > 5 && p.reserve[p.ToMove()][Queen] > 0
}

// MoveNum returns the half-move counter.
func (p *Position) MoveNum() uint16 {
	return p.moveNum
}

// OccupiedTile describes one occupied cell for read-only iteration by
// evaluators: the cell id, the bug/color of one tile in that cell's stack,
// and that tile's height.
type OccupiedTile struct {
	ID     CellId
	Bug    Bug
	Color  Color
	Height int
}

// Occupied iterates every tile on the board, including buried ones, in
// ascending id order (deterministic given a fixed position).
func (p *Position) Occupied() []OccupiedTile {
	var out []OccupiedTile
	for i := 1; i < len(p.cells); i++ {
		id := CellId(i)
		for t := p.cells[id].tile; t != nil; t = t.Beneath {
			out = append(out, OccupiedTile{ID: id, Bug: t.Bug, Color: t.Color, Height: t.Height()})
		}
	}
	return out
}

// String renders a simple per-cell diagnostic dump: one line per allocated
// cell in ascending id order, coordinate, and top-of-stack contents (or
// "-" if empty). Unspecified bit-exact (spec.md §1); the CLI's -board flag
// prints this same plain dump, with no color or hex layout.
func (p *Position) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "move=%d turn=%v hash=%016x\n", p.moveNum, p.ToMove(), uint64(p.hash))
	for i := 1; i < len(p.cells); i++ {
		id := CellId(i)
		coord := p.coordOfID[id]
		if t := p.cells[id].tile; t != nil {
			fmt.Fprintf(&sb, "  %v @%v h=%d %v\n", t.Color, coord, t.Height(), t.Bug)
		} else {
			fmt.Fprintf(&sb, "  %v -\n", coord)
		}
	}
	return sb.String()
}
