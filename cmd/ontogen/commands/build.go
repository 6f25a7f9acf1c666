package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/config"
	"github.com/exa-atow/ontogen/display"
	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/ontology"
	"github.com/exa-atow/ontogen/sym"
)

// Definition file flags shared by every command that assembles the graph.
var (
	classesFlag       []string
	defaultParentFlag string
	propertiesFlag    []string
	restrictionsFlag  []string
	instancesFlag     []string
)

// addDefinitionFlags registers the definition-file flags on a command.
// Instances and restrictions are optional inputs; a missing file is
// skipped with a warning rather than failing the build.
func addDefinitionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&classesFlag, "classes", []string{"classes.json"}, "Class definition files (relative to files_dir)")
	cmd.Flags().StringVar(&defaultParentFlag, "default-parent", "", "Parent class applied to classes without parent_class")
	cmd.Flags().StringSliceVar(&propertiesFlag, "properties", []string{"properties.json"}, "Property definition files")
	cmd.Flags().StringSliceVar(&restrictionsFlag, "restrictions", []string{"restrictions.json"}, "Restriction definition files (optional)")
	cmd.Flags().StringSliceVar(&instancesFlag, "instances", []string{"instances.json"}, "Instance definition files (optional)")
}

// buildOntology loads the configuration and assembles the full graph from
// the definition files named by the flags.
func buildOntology() (*ontology.Ontology, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	o, err := ontology.New(cfg)
	if err != nil {
		return nil, err
	}

	for _, file := range classesFlag {
		if err := o.LoadClasses(file, defaultParentFlag); err != nil {
			return nil, err
		}
	}
	for _, file := range propertiesFlag {
		if err := o.LoadProperties(file); err != nil {
			return nil, err
		}
	}
	for _, file := range restrictionsFlag {
		if err := o.LoadRestrictions(file); err != nil {
			return nil, err
		}
	}
	for _, file := range instancesFlag {
		if err := o.LoadInstances(file); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// BuildCmd assembles the graph and reports its statistics.
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: sym.Build + " Build the ontology graph from definition files",
	Long: sym.Build + ` build — Assemble the ontology graph

Reads the class, property, restriction and instance definition files from
the configured files directory and assembles the full statement set.

Examples:
  ontogen build                                  # default definition files
  ontogen build --classes sub_Workflow.json --default-parent Workflow
  ontogen build --properties properties_workflow.json -v`,
	RunE: runBuild,
}

func init() {
	addDefinitionFlags(BuildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	o, err := buildOntology()
	if err != nil {
		return err
	}

	stats := o.Stats()
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	fmt.Printf("%s Ontology built\n", sym.Onto)
	fmt.Printf("Statements:  %d\n", stats.Statements)
	fmt.Printf("Namespaces:  %d\n", stats.Namespaces)
	fmt.Printf("%s Classes:   %d\n", sym.Class, stats.Classes)
	fmt.Printf("%s Properties: %d\n", sym.Prop, stats.Properties)
	fmt.Printf("%s Instances: %d\n", sym.Inst, stats.Instances)

	if unmapped := o.Unmapped(); len(unmapped) > 0 {
		fmt.Printf("\n%d entities have no owning definition file and will not be written back\n", len(unmapped))
	}
	return nil
}
