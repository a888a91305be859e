// Package position addresses a node inside an interaction term by a path
// of left/right child selections from the root.
package position

// Position is a sum type: Epsilon (the root), Left(p) (descend into the
// left child then follow p) or Right(p) (descend into the right child then
// follow p). Concrete variants implement the unexported marker method so
// no type outside this package can add a fourth variant.
type Position interface {
	isPosition()
}

// Epsilon is the root position.
type Epsilon struct{}

func (Epsilon) isPosition() {}

// Left descends into a binary node's left child.
type Left struct {
	Sub Position
}

func (Left) isPosition() {}

// Right descends into a binary node's right child.
type Right struct {
	Sub Position
}

func (Right) isPosition() {}

// NewLeft wraps p as a Left step.
func NewLeft(p Position) Position { return Left{Sub: p} }

// NewRight wraps p as a Right step.
func NewRight(p Position) Position { return Right{Sub: p} }

// Equal reports structural equality between two positions.
func Equal(a, b Position) bool {
	switch av := a.(type) {
	case Epsilon:
		_, ok := b.(Epsilon)
		return ok
	case Left:
		bv, ok := b.(Left)
		return ok && Equal(av.Sub, bv.Sub)
	case Right:
		bv, ok := b.(Right)
		return ok && Equal(av.Sub, bv.Sub)
	default:
		return false
	}
}

// String renders a position as a path of L/R characters ending in the
// root marker ε, e.g. "LRLε".
func String(p Position) string {
	switch v := p.(type) {
	case Epsilon:
		return "ε"
	case Left:
		return "L" + String(v.Sub)
	case Right:
		return "R" + String(v.Sub)
	default:
		return "?"
	}
}
