package analysis

import (
	"fmt"
	"strings"
)

// Edge is one weighted relationship edge in canonical order (A < B).
type Edge struct {
	A, B   string
	Weight int
}

// Graph is the data form of the relationship network: nodes are every
// symptom in the matrix, edges are pairs at or above a minimum weight.
// Layout and rendering are external concerns.
type Graph struct {
	Nodes []string
	Edges []Edge
}

// BuildGraph derives the relationship graph from the matrix. Edges below
// minWeight are dropped; nodes stay even when isolated. Nodes and edges are
// deterministically ordered.
func BuildGraph(m *Matrix, minWeight int) Graph {
	if minWeight < 1 {
		minWeight = 1
	}
	g := Graph{Nodes: m.Symptoms()}
	for _, p := range m.Pairs() {
		w := m.Count(p.A, p.B)
		if w >= minWeight {
			g.Edges = append(g.Edges, Edge{A: p.A, B: p.B, Weight: w})
		}
	}
	return g
}

// Degree returns how many edges touch a node.
func (g Graph) Degree(node string) int {
	n := 0
	for _, e := range g.Edges {
		if e.A == node || e.B == node {
			n++
		}
	}
	return n
}

// DOT renders the graph in Graphviz DOT form for external layout tools.
func (g Graph) DOT() string {
	var b strings.Builder
	b.WriteString("graph symptoms {\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %s;\n", dotQuote(n))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -- %s [weight=%d, label=%d];\n", dotQuote(e.A), dotQuote(e.B), e.Weight, e.Weight)
	}
	b.WriteString("}\n")
	return b.String()
}

func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
