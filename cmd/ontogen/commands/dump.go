package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/sym"
)

// DumpCmd writes the assembled graph back into the JSON definition files.
var DumpCmd = &cobra.Command{
	Use:   "dump",
	Short: sym.Dump + " Write the ontology back to its JSON definition files",
	Long: sym.Dump + ` dump — Round-trip the ontology to JSON

Assembles the graph from the definition files, then writes every entity's
flat record back into the file that owns it. Records already in a file
keep their position; new entities are appended. Entities without an owning
file are reported and skipped.

Examples:
  ontogen dump
  ontogen dump --classes sub_Workflow.json -v`,
	RunE: runDump,
}

func init() {
	addDefinitionFlags(DumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	o, err := buildOntology()
	if err != nil {
		return err
	}

	if err := o.DumpToJSON(); err != nil {
		return err
	}
	fmt.Printf("%s Definition files updated\n", sym.File)
	return nil
}
