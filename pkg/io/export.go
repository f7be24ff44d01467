package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

type graph struct {
	Vertices []string `json:"vertices"`
	Edges    []edge   `json:"edges"`
}

type edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g *depgraph.Graph, w io.Writer) error {
	pairs := g.Pairs()
	out := graph{
		Vertices: g.Vertices(),
		Edges:    make([]edge, len(pairs)),
	}
	if out.Vertices == nil {
		out.Vertices = []string{}
	}
	for i, p := range pairs {
		out.Edges[i] = edge{From: p.From, To: p.To, Count: p.Count}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode")
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *depgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
