package arrangement

import (
	"errors"
	"fmt"

	"github.com/lqmc-lab/linarr/core"
)

// Vertex and Position re-export core's newtypes so callers of this package
// never need to import core just to name a position.
type (
	Vertex   = core.Vertex
	Position = core.Position
)

// Sentinel errors for Arrangement construction and lookups.
var (
	ErrLengthMismatch  = errors.New("arrangement: vertexToPos and posToVertex length mismatch")
	ErrNotBijective    = errors.New("arrangement: mapping is not a bijection")
	ErrVertexOutOfRange   = errors.New("arrangement: vertex out of range")
	ErrPositionOutOfRange = errors.New("arrangement: position out of range")
)

// Arrangement is a bijection between n vertices and n positions [0,n),
// represented as two always-in-sync parallel mappings. The identity
// arrangement (position i holds vertex i) is a distinguished zero-alloc
// case: vertexToPos and posToVertex are left nil and every lookup is
// computed, not stored.
type Arrangement struct {
	n           int
	identity    bool
	vertexToPos []Position
	posToVertex []Vertex
}

// NewIdentity returns the identity arrangement over n vertices: no
// allocation beyond the struct itself.
func NewIdentity(n int) *Arrangement {
	return &Arrangement{n: n, identity: true}
}

// NewFromVertexToPosition builds an explicit Arrangement from a
// vertex-to-position mapping, validating that it is a bijection on [0,n).
func NewFromVertexToPosition(vertexToPos []Position) (*Arrangement, error) {
	n := len(vertexToPos)
	posToVertex := make([]Vertex, n)
	seen := make([]bool, n)
	for v, p := range vertexToPos {
		if int(p) < 0 || int(p) >= n {
			return nil, fmt.Errorf("%w: vertex %d maps to position %d", ErrPositionOutOfRange, v, p)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: position %d assigned twice", ErrNotBijective, p)
		}
		seen[p] = true
		posToVertex[p] = Vertex(v)
	}

	return &Arrangement{n: n, vertexToPos: append([]Position(nil), vertexToPos...), posToVertex: posToVertex}, nil
}

// NewFromPositionToVertex builds an explicit Arrangement from a
// position-to-vertex mapping (the inverse direction), validating
// bijectivity.
func NewFromPositionToVertex(posToVertex []Vertex) (*Arrangement, error) {
	n := len(posToVertex)
	vertexToPos := make([]Position, n)
	seen := make([]bool, n)
	for p, v := range posToVertex {
		if int(v) < 0 || int(v) >= n {
			return nil, fmt.Errorf("%w: position %d maps to vertex %d", ErrVertexOutOfRange, p, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: vertex %d assigned twice", ErrNotBijective, v)
		}
		seen[v] = true
		vertexToPos[v] = Position(p)
	}

	return &Arrangement{n: n, vertexToPos: vertexToPos, posToVertex: append([]Vertex(nil), posToVertex...)}, nil
}

// Size returns n.
func (a *Arrangement) Size() int { return a.n }

// IsIdentity reports whether this is the distinguished identity case.
func (a *Arrangement) IsIdentity() bool { return a.identity }

func (a *Arrangement) checkVertex(v Vertex) error {
	if int(v) < 0 || int(v) >= a.n {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return nil
}

func (a *Arrangement) checkPosition(p Position) error {
	if int(p) < 0 || int(p) >= a.n {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, p)
	}

	return nil
}

// PositionOf returns the position assigned to vertex v.
func (a *Arrangement) PositionOf(v Vertex) (Position, error) {
	if err := a.checkVertex(v); err != nil {
		return 0, err
	}
	if a.identity {
		return Position(v), nil
	}

	return a.vertexToPos[v], nil
}

// VertexAt returns the vertex assigned to position p.
func (a *Arrangement) VertexAt(p Position) (Vertex, error) {
	if err := a.checkPosition(p); err != nil {
		return 0, err
	}
	if a.identity {
		return Vertex(p), nil
	}

	return a.posToVertex[p], nil
}

// Inverse returns a new Arrangement with vertex and position roles
// swapped. For the identity arrangement this is itself.
func (a *Arrangement) Inverse() *Arrangement {
	if a.identity {
		return NewIdentity(a.n)
	}

	return &Arrangement{
		n:           a.n,
		vertexToPos: positionsFromVertices(a.posToVertex),
		posToVertex: verticesFromPositions(a.vertexToPos),
	}
}

// positionsFromVertices/verticesFromPositions exist solely to let Inverse
// swap the two slice types; []Vertex and []Position are both backed by
// uint32 but are distinct types, so a straight assignment is not possible.
func positionsFromVertices(s []Vertex) []Position {
	out := make([]Position, len(s))
	for i, v := range s {
		out[i] = Position(v)
	}

	return out
}

func verticesFromPositions(s []Position) []Vertex {
	out := make([]Vertex, len(s))
	for i, p := range s {
		out[i] = Vertex(p)
	}

	return out
}
