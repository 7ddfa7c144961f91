// hiveperft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hextile/hive/pkg/hive"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/mathx"
	"golang.org/x/exp/slices"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Print per-move subtree counts at the final depth")
	dump   = flag.Bool("board", false, "Dump the initial board before searching")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "hiveperft %v", version)

	pos := hive.NewPosition()
	if *dump {
		logw.Infof(ctx, "initial position:\n%v", pos)
	}

	maxDepth := mathx.Max(1, *depth)
	for i := 1; i <= maxDepth; i++ {
		start := time.Now()
		nodes := search(ctx, pos, i, *divide && i == *depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, elapsed.Microseconds())
	}
}

// search recursively drives GenerateMoves/Apply/Undo to depth, returning the
// leaf count. d requests a divide-style breakdown of subtree counts at this
// call's own depth, one line per legal move.
func search(ctx context.Context, pos *hive.Position, depth int, d bool) int64 {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	if depth == 0 {
		return 1
	}

	buf := make([]hive.Move, 1024)
	n := pos.GenerateMoves(buf)
	moves := buf[:n]

	slices.SortFunc(moves, cmpMove)

	var nodes int64
	for _, m := range moves {
		pos.Apply(m)
		count := search(ctx, pos, depth-1, false)
		pos.Undo(m)

		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}

// cmpMove imposes a total order over Move so -divide output is reproducible
// across runs: placements before movements, then by the numeric fields.
func cmpMove(a, b hive.Move) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if a.To != b.To {
		return int(a.To) - int(b.To)
	}
	if a.From != b.From {
		return int(a.From) - int(b.From)
	}
	return int(a.Bug) - int(b.Bug)
}
