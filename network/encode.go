package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/geospan/geo"
	"github.com/katalvlaran/geospan/matrix"
	"github.com/katalvlaran/geospan/prim_kruskal"
)

// ErrDecode indicates malformed serialized input.
var ErrDecode = errors.New("network: malformed input")

// ErrSizeMismatch indicates that a serialized matrix is not square.
var ErrSizeMismatch = errors.New("network: matrix size mismatch")

// wireResult is the JSON shape of a Result.
type wireResult struct {
	Start  int          `json:"start"`
	Total  float64      `json:"total"`
	Edges  [][3]float64 `json:"edges"`  // [child, parent, weight]
	Matrix [][]float64  `json:"matrix"` // row-major distance table
}

// MarshalJSON encodes r in the wire form documented on the package.
func (r *Result) MarshalJSON() ([]byte, error) {
	w := wireResult{
		Start:  r.Start,
		Total:  r.Total,
		Edges:  make([][3]float64, len(r.Edges)),
		Matrix: [][]float64{},
	}
	for i, e := range r.Edges {
		w.Edges[i] = [3]float64{float64(e.Child), float64(e.Parent), e.Weight}
	}
	if r.Dist != nil {
		w.Matrix = r.Dist.ToRows()
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire form. The matrix key is required and edge
// endpoints must be integral.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if w.Matrix == nil {
		return fmt.Errorf("%w: missing matrix", ErrDecode)
	}

	dist, err := matrix.NewDenseFromRows(w.Matrix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	if dist.Rows() != dist.Cols() {
		return fmt.Errorf("%dx%d: %w", dist.Rows(), dist.Cols(), ErrSizeMismatch)
	}

	edges := make([]prim_kruskal.Edge, len(w.Edges))
	for i, t := range w.Edges {
		child, parent := t[0], t[1]
		if child != math.Trunc(child) || parent != math.Trunc(parent) {
			return fmt.Errorf("%w: edge %d has non-integer endpoints %v", ErrDecode, i, t)
		}
		edges[i] = prim_kruskal.Edge{Child: int(child), Parent: int(parent), Weight: t[2]}
	}

	*r = Result{Start: w.Start, Edges: edges, Total: w.Total, Dist: dist}

	return nil
}

// EncodeResult writes r as one line of JSON.
func EncodeResult(w io.Writer, r *Result) error {
	return json.NewEncoder(w).Encode(r)
}

// DecodeResult reads one serialized Result.
func DecodeResult(rd io.Reader) (*Result, error) {
	var r Result
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		if errors.Is(err, ErrDecode) || errors.Is(err, ErrSizeMismatch) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &r, nil
}

// DecodeCities reads a JSON array of cities, e.g.
//
//	[{"id":0,"name":"Helsinki","lat":60.17,"lon":24.94}, ...]
func DecodeCities(rd io.Reader) ([]geo.City, error) {
	var cities []geo.City
	if err := json.NewDecoder(rd).Decode(&cities); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return cities, nil
}
