// Package codec persists graphs as JSON or YAML documents.
//
// Both formats share the record shape of the original editor's save files:
//
//	{
//	    "nodes": [{"id": "A", "label": "A", "color": "blue", "position": [0, 0]}],
//	    "edges": [{"start": "A", "end": "B", "weight": 1, "color": "black"}]
//	}
//
// Codecs work on core.Snapshot; Decode and ReadFile rebuild the graph through
// core.FromSnapshot, so a loaded document obeys the same invariants as
// interactive edits (unique IDs, no dangling or duplicate edges, no NaN).
//
// Empty documents decode with ErrDecode (io.EOF wrapped). Node and edge order
// in the document is the insertion order after loading.
package codec
