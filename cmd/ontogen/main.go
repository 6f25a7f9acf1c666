package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/cmd/ontogen/commands"
	"github.com/exa-atow/ontogen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ontogen",
	Short: "ontogen - Ontology graph generator and JSON round-trip tool",
	Long: `ontogen - Semantic graph engine over JSON definition files.

ontogen assembles an OWL ontology graph from flat JSON definition files
(classes, properties, restrictions, instances), serializes it in standard
exchange formats, and writes the graph back into the definition files
without disturbing their order or formatting.

Available commands:
  build     - Assemble the graph and report statistics
  dump      - Write entity records back to their JSON files
  serialize - Export the graph (nquads, jsonld)
  watch     - Rebuild on definition file changes
  graph     - Project a node-link view for external viewers
  items     - Inspect and extend the definition files directly

Examples:
  ontogen build -v                        # Build with progress output
  ontogen serialize --out onto.nq         # Export as N-Quads
  ontogen dump                            # Round-trip back to JSON
  ontogen watch --out onto.nq             # Continuous rebuild`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Machine-readable JSON log output")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.DumpCmd)
	rootCmd.AddCommand(commands.SerializeCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.GraphCmd)
	rootCmd.AddCommand(commands.ItemsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
