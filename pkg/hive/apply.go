package hive

// Apply mutates the position by the given move. It trusts the caller to
// submit only moves produced by GenerateMoves (spec.md §7): it does not
// re-validate legality. Apply/Undo must be an exact inverse pair.
func (p *Position) Apply(m Move) {
	turn := p.ToMove()

	switch m.Kind {
	case PlaceMove:
		p.place(m.To, m.Bug, turn)
		p.reserve[turn][m.Bug]--
	case MovementMove:
		tile := p.lift(m.From)
		p.place(m.To, tile.Bug, tile.Color)
	case PassMove:
		// no board mutation
	default:
		invariant(false, "apply: invalid move kind %v", m.Kind)
	}

	p.moveNum++
	p.hashHistory = append(p.hashHistory, p.hash)
}

// Undo reverses a previously applied move. Calling it with anything other
// than the most recently applied move is a programming error.
func (p *Position) Undo(m Move) {
	invariant(len(p.hashHistory) > 0, "undo: empty hash history")
	p.hashHistory = p.hashHistory[:len(p.hashHistory)-1]
	p.moveNum--

	turn := p.ToMove()

	switch m.Kind {
	case PlaceMove:
		p.lift(m.To)
		p.reserve[turn][m.Bug]++
		if m.Bug == Queen {
			p.queenCell[turn] = unassigned
		}
	case MovementMove:
		tile := p.lift(m.To)
		p.place(m.From, tile.Bug, tile.Color)
	case PassMove:
		// no board mutation
	default:
		invariant(false, "undo: invalid move kind %v", m.Kind)
	}
}

// repetitionLookback is the fixed offset into the hash history used as a
// quick-cycle tie-breaker (spec.md §4.J, Open Question 2): not a proper
// 3-fold count, just a single-shot match 4 half-moves back (2 complete
// oscillation cycles). Substituting full n-fold counting would not affect
// any other invariant.
const repetitionLookback = 5

// Terminal reports the game outcome, if any. Checked in this order:
// mutual six-surround (Draw), the to-move side's queen surrounded by the
// move that was just played (JustMovedWins), the just-moved side's own
// queen already surrounded before this move somehow completed its own
// encirclement (ToMoveWins, a self-surround loss), then the repetition
// tie-breaker (Draw).
func (p *Position) Terminal() (Outcome, bool) {
	s := p.QueensSurrounded()
	bothQueensPlaced := p.queenCell[Black] != unassigned && p.queenCell[White] != unassigned

	if bothQueensPlaced && s[Black] == 6 && s[White] == 6 {
		return Draw, true
	}

	toMove := p.ToMove()
	justMoved := toMove.Opponent()

	if s[toMove] == 6 {
		return JustMovedWins, true
	}
	if s[justMoved] == 6 {
		return ToMoveWins, true
	}

	if n := len(p.hashHistory); n > repetitionLookback && p.hashHistory[n-repetitionLookback] == p.hash {
		return Draw, true
	}
	return 0, false
}
