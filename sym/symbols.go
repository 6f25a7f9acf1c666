// Package sym defines canonical symbols for ontogen operations and system
// markers. These symbols are stable across CLI output and documentation.
package sym

// Primary operation symbols, one per CLI command.
const (
	Build     = "⊕" // assemble the graph from definition files
	Dump      = "⇓" // write records back to their JSON files
	Serialize = "⇀" // export the graph in an exchange format
	Watch     = "☉" // rebuild on definition file changes
	Graph     = "⋈" // project the node-link view
)

// System markers.
const (
	Onto  = "◬" // the ontology graph itself
	File  = "▤" // definition file content
	Class = "⊓" // class entities
	Prop  = "⟶" // property entities
	Inst  = "•" // individual entities
)

// Commands maps each operation symbol to its CLI command name.
var Commands = map[string]string{
	Build:     "build",
	Dump:      "dump",
	Serialize: "serialize",
	Watch:     "watch",
	Graph:     "graph",
}
