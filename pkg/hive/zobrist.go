package hive

import (
	"math/bits"
	"math/rand"
)

// ZobristHash is an incrementally-updatable position fingerprint, used for
// transposition lookup and n-fold repetition detection.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// zobristSeed is fixed so the table is reproducible across runs, the same
// way zurichess seeds its piece-square tables with a constant source in an
// init function.
const zobristSeed = 1

// zobristTable holds one random word per (id, bug, color). Height is not a
// table axis: it is folded in by a left-rotation of the word, which avoids
// multiplying the table size by the maximum stack depth (at most 7 for
// base-game beetles). The table is process-global and read-only once
// initialized; Positions never mutate it.
var zobristTable [256][NumBugs][NumColors]ZobristHash

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for id := 0; id < 256; id++ {
		for b := ZeroBug; b < NumBugs; b++ {
			for c := ZeroColor; c < NumColors; c++ {
				zobristTable[id][b][c] = ZobristHash(r.Uint64())
			}
		}
	}
}

// zobristWord returns the incremental contribution of one tile to the hash.
// XOR is involutive: XORing the same word back out is an exact undo.
func zobristWord(id CellId, bug Bug, color Color, height int) ZobristHash {
	word := zobristTable[id][bug][color]
	return ZobristHash(bits.RotateLeft64(uint64(word), height))
}

// Hash returns the current Zobrist value: the XOR of zobristWord(id, bug,
// color, height) over every tile currently on the board (invariant 5).
func (p *Position) Hash() ZobristHash {
	return p.hash
}

// recomputeHash walks every occupied cell and its stack, recomputing the
// hash from scratch. Not used on the apply/undo hot path (that is
// incremental by construction) but useful to assert invariant 5 in tests.
func (p *Position) recomputeHash() ZobristHash {
	var hash ZobristHash
	for i := 1; i < len(p.cells); i++ {
		id := CellId(i)
		for tile := p.cells[id].tile; tile != nil; tile = tile.Beneath {
			hash ^= zobristWord(id, tile.Bug, tile.Color, tile.Height())
		}
	}
	return hash
}
