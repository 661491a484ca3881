// Package layer provides the crossing-minimization primitives operating on
// layered (k-partite) graphs: index mapping between opaque node identifiers
// and dense per-layer ranks, an exact weighted crossing counter, a dense
// pairwise contribution matrix builder, a matrix aggregator, and the
// hierarchy algebra for nested contiguous groupings.
//
// Nodes are parameterized over any comparable identifier type T; the engine
// never inspects T's contents beyond equality and hashing (as a map key).
package layer

import (
	"errors"
	"fmt"
)

// Edge is a directed, weighted connection from a node in one layer to a node
// in the next layer. Weight must be >= 1.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight int
}

// Layer is an ordered sequence of distinct node identifiers. A node's
// position in the slice is its rank within the layer.
type Layer[T comparable] []T

// Graph is a sequence of L >= 2 layers plus L-1 edge sets, edges[i]
// connecting Layers[i] to Layers[i+1].
type Graph[T comparable] struct {
	Layers []Layer[T]
	Edges  [][]Edge[T]
}

// ErrInvalidLayerIndex is returned when a layer index is outside [0, L).
var ErrInvalidLayerIndex = errors.New("layer index out of range")

// EdgeLayerMismatch is returned when the number of edge sets does not equal
// one fewer than the number of layers.
type EdgeLayerMismatch struct {
	Edges  int
	Layers int
}

func (e *EdgeLayerMismatch) Error() string {
	return fmt.Sprintf("layer: %d edge sets do not match %d layers (want %d edge sets)", e.Edges, e.Layers, e.Layers-1)
}

// MissingNode is returned when an edge references a node absent from its
// declared layer.
type MissingNode[T comparable] struct {
	Node       T
	LayerIndex int
}

func (e *MissingNode[T]) Error() string {
	return fmt.Sprintf("layer: node %v not found in layer %d", e.Node, e.LayerIndex)
}

// NewGraph validates and constructs a Graph from layers and edge sets.
//
// It checks len(edges) == len(layers)-1 and that every edge endpoint is
// present in its declared layer, returning *EdgeLayerMismatch or
// *MissingNode[T] respectively. It does not check for duplicate identifiers
// within a layer or duplicate (u,v) edges; callers that need those
// guarantees should check at the data-ingestion boundary.
func NewGraph[T comparable](layers []Layer[T], edges [][]Edge[T]) (*Graph[T], error) {
	if len(edges) != len(layers)-1 {
		return nil, &EdgeLayerMismatch{Edges: len(edges), Layers: len(layers)}
	}
	for i, set := range edges {
		upper := indexOf(layers[i])
		lower := indexOf(layers[i+1])
		for _, e := range set {
			if _, ok := upper[e.From]; !ok {
				return nil, &MissingNode[T]{Node: e.From, LayerIndex: i}
			}
			if _, ok := lower[e.To]; !ok {
				return nil, &MissingNode[T]{Node: e.To, LayerIndex: i + 1}
			}
		}
	}
	return &Graph[T]{Layers: layers, Edges: edges}, nil
}

func indexOf[T comparable](layer Layer[T]) map[T]int {
	m := make(map[T]int, len(layer))
	for i, id := range layer {
		m[id] = i
	}
	return m
}

// NumLayers returns the number of layers in the graph.
func (g *Graph[T]) NumLayers() int { return len(g.Layers) }

// InvertEdges swaps the From/To endpoint of every edge in set, returning a
// new slice. The input is not modified.
func InvertEdges[T comparable](set []Edge[T]) []Edge[T] {
	out := make([]Edge[T], len(set))
	for i, e := range set {
		out[i] = Edge[T]{From: e.To, To: e.From, Weight: e.Weight}
	}
	return out
}
