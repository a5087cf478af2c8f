// Package hex provides the cube-coordinate model for hexagonal boards.
package hex

import "fmt"

// Coord is a position on a hexagonal grid in cube coordinates.
// Valid coordinates satisfy X + Y + Z == 0.
type Coord struct {
	X, Y, Z int
}

// Directions are the six unit offsets to a cell's axial neighbors,
// in clockwise order starting from the east edge.
var Directions = [6]Coord{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y, c.Z + other.Z}
}

// Neighbor returns the adjacent coordinate in direction i (0-5).
func (c Coord) Neighbor(i int) Coord {
	return c.Add(Directions[((i%6)+6)%6])
}

// Valid reports whether the coordinate lies on the cube plane.
func (c Coord) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Key returns a deterministic integer key combining all three axes.
// Coord is comparable and works as a map key directly; Key exists for
// stable ordering and for span attributes that want a single value.
func (c Coord) Key() uint64 {
	h := mix(uint64(int64(c.X)))
	h = mix(h ^ uint64(int64(c.Y)))
	h = mix(h ^ uint64(int64(c.Z)))
	return h
}

// mix is a 64-bit finalizer (splitmix64 style) to spread small integer
// inputs across the key space.
func mix(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}

// Less orders coordinates lexicographically by (X, Y, Z).
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.Z < other.Z
}

// String returns the coordinate in "(x,y,z)" form.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
