package hive

import "testing"

// TestGrasshopperJumps_S4 places a grasshopper next to a run of two
// occupied cells and confirms it jumps to the first empty cell beyond the
// run, and emits nothing in directions with an empty or unoccupied-first
// neighbor.
func TestGrasshopperJumps_S4(t *testing.T) {
	p := NewPosition()
	origin := p.idFor(Coord{0, 0})
	hop1 := p.idFor(Coord{1, 0})
	hop2 := p.idFor(Coord{2, 0})
	landing := p.idFor(Coord{3, 0})

	p.Apply(Place(origin, Grasshopper))
	p.Apply(Place(hop1, Queen))
	p.Apply(Place(hop2, Queen))

	buf := make([]Move, 8)
	n := 0
	p.generateGrasshopperMoves(origin, buf, &n)

	if n != 1 {
		t.Fatalf("expected exactly one grasshopper jump, got %d: %v", n, buf[:n])
	}
	if buf[0] != Movement(origin, landing) {
		t.Fatalf("expected jump to land at %v, got %v", landing, buf[0])
	}
}

// TestGrasshopperNoJumpOverSingleGap confirms an adjacent empty cell (no
// occupied run) produces no jump in that direction.
func TestGrasshopperNoJumpOverSingleGap(t *testing.T) {
	p := NewPosition()
	origin := p.idFor(Coord{0, 0})
	p.Apply(Place(origin, Grasshopper))
	p.Apply(Place(p.idFor(Coord{1, 0}), Queen))
	p.Apply(Movement(p.idFor(Coord{1, 0}), p.idFor(Coord{2, 0})))

	buf := make([]Move, 8)
	n := 0
	p.generateGrasshopperMoves(origin, buf, &n)
	if n != 0 {
		t.Fatalf("expected no grasshopper jumps with no adjacent occupied cell, got %d: %v", n, buf[:n])
	}
}
