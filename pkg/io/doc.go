// Package io exports a package dependency graph as JSON.
//
// # Format
//
// Distinct ordered pairs are written once with their multiplicity, in the
// order the pair was first seen:
//
//	{
//	  "vertices": ["a", "b"],
//	  "edges": [
//	    {"from": "a", "to": "b", "count": 2},
//	    {"from": "b", "to": "a", "count": 1}
//	  ]
//	}
//
// Use [ExportJSON] to write to a file, or [WriteJSON] to write to any
// io.Writer.
package io
