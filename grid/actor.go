package grid

import "fmt"

// Actor is an oriented walker: a beam, cursor or crucible with a current
// cell and a heading. Actors are comparable and can key visited sets.
type Actor struct {
	Pos    Position
	Vector Vector
}

// NewActor places an actor at pos heading one cell toward d.
func NewActor(pos Position, d Direction) Actor {
	return Actor{Pos: pos, Vector: d.UnitVector()}
}

// Advance moves the actor by its vector. When that would leave the
// non-negative quadrant it returns ErrOutOfRange and Pos is unchanged;
// leaving on the high side is detected by the caller's Grid lookup.
func (a *Actor) Advance() error {
	next, err := a.Pos.Add(a.Vector)
	if err != nil {
		return err
	}
	a.Pos = next
	return nil
}

// Heading returns the direction of the actor's vector, if it is cardinal.
func (a Actor) Heading() (Direction, bool) {
	return a.Vector.Direction()
}

// Turn rotates the heading by rel and keeps the vector's magnitude.
// Zero and diagonal vectors have no heading and yield ErrNonCardinal.
func (a *Actor) Turn(rel RelativeDirection) error {
	d, ok := a.Vector.Direction()
	if !ok {
		return fmt.Errorf("%w: %v", ErrNonCardinal, a.Vector)
	}
	a.Vector = d.Turned(rel).UnitVector().Scale(a.Vector.ManhattanDistance())
	return nil
}

// Face points the actor toward d, keeping the vector's magnitude.
func (a *Actor) Face(d Direction) {
	n := a.Vector.ManhattanDistance()
	if n == 0 {
		n = 1
	}
	a.Vector = d.UnitVector().Scale(n)
}
