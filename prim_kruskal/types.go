package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geospan/matrix"
)

// ErrInvalidMatrix indicates that the distance table is nil or not square.
var ErrInvalidMatrix = errors.New("prim_kruskal: MST requires a square distance matrix")

// ErrStartOutOfRange indicates that Prim's start vertex lies outside [0, N).
var ErrStartOutOfRange = errors.New("prim_kruskal: start vertex out of range")

// ErrDisconnected indicates that some vertex cannot be reached through finite
// weights, so no spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidTree indicates that an edge list is not a spanning tree of the matrix.
var ErrInvalidTree = errors.New("prim_kruskal: invalid spanning tree")

// ErrUnknownMethod indicates that Compute was given an unsupported method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Edge attaches Child to the tree through Parent at the matrix weight
// dist[Child][Parent].
type Edge struct {
	Child  int
	Parent int
	Weight float64
}

// String renders the edge as "child-parent(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.Child, e.Parent, e.Weight)
}

// MethodPrim selects the dense O(N²) Prim algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
// Fields:
//
//	Method string — MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets Prim's start vertex.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the algorithm selected by opts.Method.
func Compute(dist matrix.Matrix, opts MSTOptions) ([]Edge, float64, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(dist, opts.Root)
	case MethodKruskal:
		return Kruskal(dist)
	default:
		return nil, 0, fmt.Errorf("%q: %w", opts.Method, ErrUnknownMethod)
	}
}

// validateMatrix wraps matrix shape and symmetry errors into ErrInvalidMatrix.
// Edges are read as (child, parent) cells, so both directions must agree.
func validateMatrix(dist matrix.Matrix) error {
	if err := matrix.ValidateSquare(dist); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if err := matrix.ValidateSymmetric(dist, weightTol); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}

	return nil
}
