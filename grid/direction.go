package grid

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// RelativeDirection is a turn relative to the current heading.
type RelativeDirection uint8

const (
	Forward RelativeDirection = iota
	Backward
	Left
	Right
)

var (
	unitVectors = [...]Vector{
		North: {0, -1},
		South: {0, 1},
		East:  {1, 0},
		West:  {-1, 0},
	}
	opposites = [...]Direction{North: South, South: North, East: West, West: East}
	lefts     = [...]Direction{North: West, South: East, East: North, West: South}
	rights    = [...]Direction{North: East, South: West, East: South, West: North}
	dirNames  = [...]string{North: "North", South: "South", East: "East", West: "West"}
)

// All returns the four directions in the fixed order North, South, East, West.
// Searches expand neighbors in this order, so it doubles as a tie-breaker.
func All() [4]Direction {
	return [4]Direction{North, South, East, West}
}

// UnitVector returns the one-step displacement for d.
func (d Direction) UnitVector() Vector {
	return unitVectors[d]
}

// Opposite is shorthand for d.Turned(Backward).
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Turned returns the heading after turning rel from d.
func (d Direction) Turned(rel RelativeDirection) Direction {
	switch rel {
	case Backward:
		return opposites[d]
	case Left:
		return lefts[d]
	case Right:
		return rights[d]
	default:
		return d
	}
}

// IsVertical reports whether d is North or South.
func (d Direction) IsVertical() bool {
	return d == North || d == South
}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "Direction(?)"
}

// Opposite returns the turn that undoes r: Left and Right swap,
// Forward and Backward are their own inverse.
func (r RelativeDirection) Opposite() RelativeDirection {
	switch r {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return r
	}
}
