package hive

// generatePlacements appends every legal Place move for the side to move
// into buf[*n:], advancing *n.
//
// Opening exception (moveNum < 2): the first Black placement is forced at
// the pre-allocated id for (0,0), the first White placement at the
// pre-allocated id for (1,0); no color-adjacency rule applies yet.
//
// Thereafter: a cell is a legal target iff it has at least one neighbor of
// the mover's color and none of the opponent's. For each such cell, one
// placement is emitted per bug type with positive reserve, restricted to
// Queen only when QueenRequired().
func (p *Position) generatePlacements(buf []Move, n *int) {
	turn := p.ToMove()

	if p.moveNum < 2 {
		forced := CellId(p.moveNum + 1) // (0,0) was allocated first (id 1), (1,0) second (id 2)
		for b := ZeroBug; b < NumBugs; b++ {
			if p.reserve[turn][b] > 0 {
				buf[*n] = Place(forced, b)
				*n++
			}
		}
		return
	}

	for i := 1; i < len(p.cells); i++ {
		id := CellId(i)
		if p.isOccupied(id) {
			continue
		}

		buddies, enemies := 0, 0
		for _, adj := range p.cellAt(id).neighbors {
			if t := p.tileAt(adj); t != nil {
				if t.Color == turn {
					buddies++
				} else {
					enemies++
				}
			}
		}
		if buddies == 0 || enemies > 0 {
			continue
		}

		queenOnly := p.QueenRequired()
		for b := ZeroBug; b < NumBugs; b++ {
			if queenOnly && b != Queen {
				continue
			}
			if p.reserve[turn][b] > 0 {
				buf[*n] = Place(id, b)
				*n++
			}
		}
	}
}
