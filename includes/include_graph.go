package includes

import (
	"errors"

	"github.com/dominikbraun/graph"
)

// EdgeKind records which resolution step produced an include edge.
type EdgeKind string

const (
	EdgeRelative      EdgeKind = "relative"
	EdgeResolveFolder EdgeKind = "resolve"
	EdgeConflict      EdgeKind = "conflict"
	EdgeIncludeFolder EdgeKind = "include"
)

// includeGraph is the directed file -> included file graph discovered by the engine.
// Vertices are keyed by display path.
type includeGraph struct {
	g graph.Graph[string, string]
}

func newIncludeGraph() *includeGraph {
	return &includeGraph{g: graph.New(graph.StringHash, graph.Directed())}
}

func (ig *includeGraph) addFile(file CanonicalPath) error {
	err := ig.g.AddVertex(file.Display(), graph.VertexAttribute("label", file.Base()))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}
	return nil
}

func (ig *includeGraph) addEdge(from, to CanonicalPath, kind EdgeKind) error {
	if err := ig.addFile(from); err != nil {
		return err
	}
	if err := ig.addFile(to); err != nil {
		return err
	}

	err := ig.g.AddEdge(from.Display(), to.Display(), graph.EdgeAttribute("label", string(kind)))
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return err
	}
	return nil
}
