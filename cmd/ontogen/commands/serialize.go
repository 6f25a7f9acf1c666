package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/config"
	"github.com/exa-atow/ontogen/sym"
)

var (
	serializeFormatFlag string
	serializeOutFlag    string
)

// SerializeCmd exports the graph in a triple-based exchange format.
var SerializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: sym.Serialize + " Export the ontology graph in an exchange format",
	Long: sym.Serialize + ` serialize — Export the graph

Assembles the graph and writes it out in the requested exchange format.
Formats come from the quad format registry; nquads and jsonld are always
available. Without --out the serialization goes to stdout.

Examples:
  ontogen serialize                          # config default format, stdout
  ontogen serialize --format jsonld --out onto.jsonld`,
	RunE: runSerialize,
}

func init() {
	addDefinitionFlags(SerializeCmd)
	SerializeCmd.Flags().StringVar(&serializeFormatFlag, "format", "", "Exchange format (defaults to the configured format)")
	SerializeCmd.Flags().StringVar(&serializeOutFlag, "out", "", "Destination file (stdout when empty)")
}

func runSerialize(cmd *cobra.Command, args []string) error {
	o, err := buildOntology()
	if err != nil {
		return err
	}

	format := serializeFormatFlag
	if format == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		format = cfg.Format
	}

	if serializeOutFlag == "" {
		return o.Serialize(os.Stdout, format)
	}
	if err := o.SerializeToFile(serializeOutFlag, format); err != nil {
		return err
	}
	fmt.Printf("%s Graph written to %s (%s)\n", sym.Serialize, serializeOutFlag, format)
	return nil
}
