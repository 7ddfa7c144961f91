package hive

import "testing"

func TestIdForAllocatesAppendOnly(t *testing.T) {
	p := NewPosition()

	origin := p.idFor(Coord{0, 0})
	if origin != 1 {
		t.Fatalf("expected the pre-allocated origin to be id 1, got %v", origin)
	}
	if again := p.idFor(Coord{0, 0}); again != origin {
		t.Fatalf("idFor must be stable: got %v, want %v", again, origin)
	}

	third := p.idFor(Coord{5, 5})
	if third != 3 {
		t.Fatalf("expected the third allocated cell to be id 3, got %v", third)
	}
}

func TestIdForCrossLinksNeighbors(t *testing.T) {
	p := NewPosition()
	origin := p.idFor(Coord{0, 0})

	neighbors := Coord{0, 0}.Neighbors()
	for dir, nc := range neighbors {
		nid := p.idFor(nc)
		back := Opposite(dir)
		if p.cellAt(nid).neighbors[back] != origin {
			t.Fatalf("neighbor %v direction %v does not link back to origin", nc, back)
		}
		if p.cellAt(origin).neighbors[dir] != nid {
			t.Fatalf("origin direction %v does not link to neighbor %v", dir, nc)
		}
	}
}

func TestSurroundAllocatesAllNeighbors(t *testing.T) {
	p := NewPosition()
	id := p.idFor(Coord{10, 10})
	p.surround(id)

	for _, nc := range p.CoordOf(id).Neighbors() {
		if _, ok := p.idOfCoord[nc]; !ok {
			t.Fatalf("surround did not allocate neighbor %v", nc)
		}
	}
}
