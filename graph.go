// Copyright ©2024 The gohpo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpo

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Graph is the is-a relation over a Store's terms, exposed as a
// gonum.org/v1/gonum/graph.Directed so that topological sort and
// breadth-first traversal can be reused from gonum rather than
// hand-rolled. Edges run from a child term to its parent (the direction
// rdfs:subClassOf uses in kortschak/gogo's Gene Ontology graph), so From
// yields parents and To yields children.
type Graph struct {
	store *Store
	root  int
	rootSet bool
}

// newGraph returns a Graph over the terms already present in store. It
// does not compute closures; call build for that.
func newGraph(store *Store) *Graph {
	return &Graph{store: store}
}

// Node implements graph.Graph.
func (g *Graph) Node(id int64) graph.Node {
	t, ok := g.store.Term(int(id))
	if !ok {
		return nil
	}
	return t
}

// Nodes implements graph.Graph.
func (g *Graph) Nodes() graph.Nodes {
	terms := g.store.All()
	if len(terms) == 0 {
		return graph.Empty
	}
	nodes := make(map[int64]graph.Node, len(terms))
	for _, t := range terms {
		nodes[t.ID()] = t
	}
	return iterator.NewNodes(nodes)
}

// From implements graph.Graph: it returns the parents of the term with the
// given index.
func (g *Graph) From(id int64) graph.Nodes {
	t, ok := g.store.Term(int(id))
	if !ok || len(t.parents) == 0 {
		return graph.Empty
	}
	nodes := make(map[int64]graph.Node, len(t.parents))
	for p := range t.parents {
		pt, _ := g.store.Term(p)
		nodes[pt.ID()] = pt
	}
	return iterator.NewNodes(nodes)
}

// To returns the children of the term with the given index.
func (g *Graph) To(id int64) graph.Nodes {
	t, ok := g.store.Term(int(id))
	if !ok || len(t.children) == 0 {
		return graph.Empty
	}
	nodes := make(map[int64]graph.Node, len(t.children))
	for c := range t.children {
		ct, _ := g.store.Term(c)
		nodes[ct.ID()] = ct
	}
	return iterator.NewNodes(nodes)
}

// HasEdgeBetween implements graph.Graph.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo implements graph.Directed: an edge exists from u to v when
// v is a parent of u.
func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	t, ok := g.store.Term(int(uid))
	if !ok {
		return false
	}
	_, ok = t.parents[int(vid)]
	return ok
}

// Edge implements graph.Graph.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	if !g.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.Edge{F: g.Node(uid), T: g.Node(vid)}
}

// reverseGraph is a graph.Directed that reverses the direction of g's
// edges, in the style of kortschak/gogo's internal "reverse" wrapper used
// to walk a Gene Ontology graph from roots toward leaves.
type reverseGraph struct{ *Graph }

func (r reverseGraph) From(id int64) graph.Nodes      { return r.Graph.To(id) }
func (r reverseGraph) To(id int64) graph.Nodes        { return r.Graph.From(id) }
func (r reverseGraph) Edge(uid, vid int64) graph.Edge { return r.Graph.Edge(vid, uid) }
func (r reverseGraph) HasEdgeFromTo(uid, vid int64) bool {
	return r.Graph.HasEdgeFromTo(vid, uid)
}

// addEdge records a direct is-a edge: child is-a parent.
func (g *Graph) addEdge(child, parent *Term) {
	child.parents[parent.index] = struct{}{}
	parent.children[child.index] = struct{}{}
}

// build computes the ancestor/descendant closures and root for every term
// in g's store, and must be called exactly once, after every is-a edge has
// been added and before the graph is treated as read-only. It returns an
// *InvariantViolationError if the is-a relation contains a cycle or if the
// graph does not have exactly one root.
func (g *Graph) build() error {
	order, err := topo.Sort(g)
	if err != nil {
		return &InvariantViolationError{
			Msg: "is-a relation contains a cycle",
			Err: err,
		}
	}

	// order lists children before parents (an edge child->parent means
	// child must precede parent in topological order). Use it as-is to
	// accumulate descendants (children done before their parents need
	// them), and in reverse to accumulate ancestors (parents done before
	// their children need them).
	for _, n := range order {
		t := n.(*Term)
		t.descendants = make(map[int]struct{})
		for c := range t.children {
			ct, _ := g.store.Term(c)
			t.descendants[c] = struct{}{}
			for d := range ct.descendants {
				t.descendants[d] = struct{}{}
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		t := order[i].(*Term)
		t.ancestors = make(map[int]struct{})
		t.longestToRoot = 0
		t.shortestToRoot = 0
		first := true
		for p := range t.parents {
			pt, _ := g.store.Term(p)
			t.ancestors[p] = struct{}{}
			for a := range pt.ancestors {
				t.ancestors[a] = struct{}{}
			}
			cand := pt.longestToRoot + 1
			if first || cand > t.longestToRoot {
				t.longestToRoot = cand
			}
			cand = pt.shortestToRoot + 1
			if first || cand < t.shortestToRoot {
				t.shortestToRoot = cand
			}
			first = false
		}
	}

	var roots []int
	for _, t := range g.store.All() {
		if len(t.parents) == 0 {
			roots = append(roots, t.index)
		}
	}
	switch len(roots) {
	case 0:
		return &InvariantViolationError{Msg: "no root term (HP:0000001) found"}
	case 1:
		t := g.store.byIndex[roots[0]]
		if t.id != RootID {
			return &InvariantViolationError{Msg: fmt.Sprintf("unique parentless term is %s, not %s", t.id, RootID)}
		}
		g.root = roots[0]
		g.rootSet = true
	default:
		return &InvariantViolationError{Msg: fmt.Sprintf("multiple root terms found: %d", len(roots))}
	}
	return nil
}

// ascent holds the result of a breadth-first walk up the is-a relation
// from a single starting term: for every reachable ancestor (including the
// start term itself, at distance 0) it records the distance in edges and
// the predecessor term index on a shortest path back to the start.
type ascent struct {
	dist map[int]int
	pred map[int]int
}

// ascend walks from t up through its ancestors, recording shortest
// distances and predecessors, in the traverse.BreadthFirst idiom
// kortschak/gogo uses for ClosestCommonAncestor and IsDescendantOf.
func (g *Graph) ascend(t *Term) ascent {
	a := ascent{dist: map[int]int{t.index: 0}, pred: map[int]int{}}
	var bf traverse.BreadthFirst
	bf.Visit = func(u, v graph.Node) {
		vid := int(v.ID())
		if _, ok := a.dist[vid]; !ok {
			a.dist[vid] = a.dist[int(u.ID())] + 1
			a.pred[vid] = int(u.ID())
		}
	}
	bf.Walk(g, t, func(graph.Node, int) bool { return false })
	return a
}

// pathVia reconstructs the is-a chain from start up to target using a's
// predecessor map, returning the indices from start to target inclusive.
func pathVia(a ascent, start, target int) []int {
	if start == target {
		return []int{start}
	}
	var rev []int
	for n := target; ; {
		rev = append(rev, n)
		if n == start {
			break
		}
		n = a.pred[n]
	}
	// rev currently runs target -> ... -> start; we built it walking
	// predecessors from target back to start, so reverse it to get
	// start -> ... -> target.
	path := make([]int, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}

// ShortestPath returns the length, the term-index path, and the up/down
// leg lengths of the shortest path between a and b via any common
// ancestor
func (g *Graph) ShortestPath(a, b *Term) (length int, path []int, up, down int, err error) {
	if a == b {
		return 0, []int{a.index}, 0, 0, nil
	}
	ascA := g.ascend(a)
	ascB := g.ascend(b)

	best := -1
	var bestC int
	for c, da := range ascA.dist {
		db, ok := ascB.dist[c]
		if !ok {
			continue
		}
		total := da + db
		if best == -1 || total < best {
			best = total
			bestC = c
		}
	}
	if best == -1 {
		return 0, nil, 0, 0, &DomainError{Msg: fmt.Sprintf("no common ancestor between %s and %s", a.id, b.id)}
	}

	up = ascA.dist[bestC]
	down = ascB.dist[bestC]
	upPath := pathVia(ascA, a.index, bestC)
	downPath := pathVia(ascB, b.index, bestC)
	path = append(path, upPath...)
	for i := len(downPath) - 2; i >= 0; i-- {
		path = append(path, downPath[i])
	}
	return best, path, up, down, nil
}

// ShortestPathToParent returns the is-a chain from t up to p. It fails
// with a *DomainError if p is not an ancestor of t.
func (g *Graph) ShortestPathToParent(t, p *Term) ([]int, error) {
	if _, ok := t.ancestors[p.index]; !ok && t != p {
		return nil, &DomainError{Msg: fmt.Sprintf("%s is not an ancestor of %s", p.id, t.id)}
	}
	if t == p {
		return []int{t.index}, nil
	}
	a := g.ascend(t)
	return pathVia(a, t.index, p.index), nil
}
