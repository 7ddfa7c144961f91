package hive

import "fmt"

// Coord is an axial hex coordinate. The first Black placement is always at
// (0,0); the first White placement is always at (1,0).
type Coord struct {
	X, Y int8
}

// NumDirections is the number of neighbor directions of a hex cell.
const NumDirections = 6

// Neighbors returns the 6 neighbor coordinates of c in clockwise order,
// starting upper-left: direction 0 is (x-1,y-1), 1 is (x,y-1), 2 is
// (x+1,y), 3 is (x+1,y+1), 4 is (x,y+1), 5 is (x-1,y). Direction i is
// opposite direction (i+3)%6.
func (c Coord) Neighbors() [NumDirections]Coord {
	return [NumDirections]Coord{
		{c.X - 1, c.Y - 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// Opposite returns the direction index opposite dir.
func Opposite(dir int) int {
	return (dir + 3) % NumDirections
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
