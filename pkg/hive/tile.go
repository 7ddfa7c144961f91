package hive

// Tile is a single bug occupying a cell, with whatever was climbed upon
// linked beneath it. Height is the number of tiles below (ground = 0).
type Tile struct {
	Bug     Bug
	Color   Color
	Beneath *Tile
}

// Height walks the Beneath chain. Bounded by the base game's beetle count
// (at most 7 tiles can ever stack on one cell), so this is always cheap.
func (t *Tile) Height() int {
	h := 0
	for cur := t.Beneath; cur != nil; cur = cur.Beneath {
		h++
	}
	return h
}

// place puts bug/color on top of whatever is at id, maintaining the
// downward-linked stack. If the cell was empty, it first surrounds id so
// every neighbor coordinate is allocated (invariant 2). Updates the
// incremental hash and the queen-cell cache.
func (p *Position) place(id CellId, bug Bug, color Color) {
	c := p.cellAt(id)

	var beneath *Tile
	if c.tile != nil {
		beneath = c.tile
	} else {
		p.surround(id)
	}

	tile := &Tile{Bug: bug, Color: color, Beneath: beneath}
	p.cells[id].tile = tile
	p.hash ^= zobristWord(id, bug, color, tile.Height())

	if bug == Queen {
		p.queenCell[color] = id
	}
}

// lift removes and returns the top tile at id, promoting whatever was
// beneath it (if any) to the cell. Panics if the cell is empty.
func (p *Position) lift(id CellId) *Tile {
	c := p.cellAt(id)
	invariant(c.tile != nil, "lift from empty cell %v", p.CoordOf(id))

	tile := c.tile
	p.hash ^= zobristWord(id, tile.Bug, tile.Color, tile.Height())
	p.cells[id].tile = tile.Beneath
	return tile
}
