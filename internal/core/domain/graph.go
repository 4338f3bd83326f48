// Package domain contains the core value types of the asset graph.
package domain

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Node is one asset in the graph, reduced to its identity and outgoing edges.
type Node struct {
	Ident      Ident
	References []Ident
}

// Graph is an arena of asset nodes indexed by identity.
type Graph struct {
	nodes map[Ident]Node
	order []Ident
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Ident]Node),
	}
}

// AddAsset adds a node to the graph.
// Adding a node equal to one already present is a no-op. Adding a node whose
// identity is present with different references returns ErrAssetConflict.
func (g *Graph) AddAsset(n Node) error {
	if existing, ok := g.nodes[n.Ident]; ok {
		if slices.Equal(existing.References, n.References) {
			return nil
		}
		return zerr.With(ErrAssetConflict, "ident", n.Ident.String())
	}
	n.References = slices.Clone(n.References)
	g.nodes[n.Ident] = n
	g.order = nil
	return nil
}

// Get returns the node with the given identity.
func (g *Graph) Get(id Ident) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Validate checks for missing references and cycles, then computes a
// deterministic topological order with references before referrers.
func (g *Graph) Validate() error {
	g.order = make([]Ident, 0, len(g.nodes))
	visited := make(map[Ident]int) // 0: unvisited, 1: visiting, 2: visited
	var path []Ident

	var visit func(u Ident) error
	visit = func(u Ident) error {
		visited[u] = 1
		path = append(path, u)

		node, exists := g.nodes[u]
		if !exists {
			return zerr.With(ErrMissingReference, "reference", u.String())
		}

		for _, ref := range node.References {
			if visited[ref] == 1 {
				return g.buildCycleError(path, ref)
			}
			if visited[ref] == 0 {
				if err := visit(ref); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	for _, id := range g.sortedIdents() {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				g.order = nil
				return err
			}
		}
	}

	return nil
}

func (g *Graph) sortedIdents() []Ident {
	ids := make([]Ident, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b Ident) int {
		return cmp.Or(
			cmp.Compare(a.String(), b.String()),
			cmp.Compare(a.Digest(), b.Digest()),
		)
	})
	return ids
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []Ident, ref Ident) error {
	start := slices.Index(path, ref)
	parts := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		parts = append(parts, id.String())
	}
	parts = append(parts, ref.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}

// Walk returns an iterator that yields nodes in topological order.
// It yields nothing unless Validate has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range g.order {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// AffectedBy returns every node whose path is one of paths, plus every node
// that transitively references one of them. The result is sorted.
func (g *Graph) AffectedBy(paths ...string) []Ident {
	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		wanted[cleanPath(p)] = true
	}

	referrers := make(map[Ident][]Ident)
	var queue []Ident
	for id, n := range g.nodes {
		for _, ref := range n.References {
			referrers[ref] = append(referrers[ref], id)
		}
		if wanted[id.Path.String()] {
			queue = append(queue, id)
		}
	}

	seen := make(map[Ident]bool)
	var out []Ident
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		queue = append(queue, referrers[id]...)
	}

	slices.SortFunc(out, func(a, b Ident) int {
		return cmp.Compare(a.String(), b.String())
	})
	return out
}
