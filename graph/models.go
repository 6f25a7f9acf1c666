// Package graph projects the ontology statement set into a flat
// node-link structure for external viewers. The projection keeps typed
// entities only; anonymous scaffolding such as restriction and list nodes
// never becomes a node.
package graph

import (
	"time"
)

// Graph is the complete projection.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node is a typed entity in the projection.
type Node struct {
	ID    string `json:"id"`
	Type  string `json:"type"`            // local name of the rdf:type object
	Label string `json:"label"`           // preferred label, falling back to the local name
	Title string `json:"title,omitempty"` // comment text for hover display
}

// Link is a directed relationship between two typed nodes.
type Link struct {
	Source string `json:"source"` // node ID
	Target string `json:"target"` // node ID
	Type   string `json:"type"`   // predicate local name
	Label  string `json:"label,omitempty"`
}

// Meta carries projection metadata.
type Meta struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Stats       Stats             `json:"stats"`
	Namespaces  map[string]string `json:"namespaces,omitempty"`
}

// Stats counts the projection.
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalLinks int `json:"total_links"`
}
