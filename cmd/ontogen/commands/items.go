package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/config"
	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/items"
	"github.com/exa-atow/ontogen/ontology"
	"github.com/exa-atow/ontogen/sym"
)

// ItemsCmd works on the flat definition-file item cache without building
// the full graph, for quick inspection and scripted additions.
var ItemsCmd = &cobra.Command{
	Use:   "items",
	Short: sym.File + " Inspect and extend the definition files directly",
	Long: sym.File + ` items — Flat definition-file access

Loads every JSON definition file in the configured files directory into a
flat id-keyed cache, without assembling the ontology graph.

Examples:
  ontogen items ls                      # List all item identifiers
  ontogen items add --id Step --label "Step" --parent Job --file classes.json`,
}

var itemsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached item identifiers",
	RunE:  runItemsLs,
}

var (
	itemIDFlag      string
	itemLabelFlag   string
	itemLabelFrFlag string
	itemCommentFlag string
	itemParentFlag  string
	itemFileFlag    string
	itemForceFlag   bool
)

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item and append it to its definition file",
	RunE:  runItemsAdd,
}

func init() {
	itemsAddCmd.Flags().StringVar(&itemIDFlag, "id", "", "Item identifier (required)")
	itemsAddCmd.Flags().StringVar(&itemLabelFlag, "label", "", "English label")
	itemsAddCmd.Flags().StringVar(&itemLabelFrFlag, "label-fr", "", "French label")
	itemsAddCmd.Flags().StringVar(&itemCommentFlag, "comment", "", "English comment")
	itemsAddCmd.Flags().StringVar(&itemParentFlag, "parent", "", "Parent item identifier")
	itemsAddCmd.Flags().StringVar(&itemFileFlag, "file", "", "Definition file to append to (required)")
	itemsAddCmd.Flags().BoolVar(&itemForceFlag, "force", false, "Replace an existing item")
	_ = itemsAddCmd.MarkFlagRequired("id")
	_ = itemsAddCmd.MarkFlagRequired("file")

	ItemsCmd.AddCommand(itemsLsCmd)
	ItemsCmd.AddCommand(itemsAddCmd)
}

func loadItemCache() (*items.Cache, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return items.Load(cfg.FilesDir)
}

func runItemsLs(cmd *cobra.Command, args []string) error {
	cache, err := loadItemCache()
	if err != nil {
		return err
	}

	for _, path := range cache.Paths() {
		fmt.Printf("%s %s\n", sym.File, path)
	}

	ids := cache.IDs()
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
	fmt.Printf("\n%d items\n", cache.Len())
	return nil
}

func runItemsAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	cache, err := items.Load(cfg.FilesDir)
	if err != nil {
		return err
	}

	item := &items.Item{
		ID:         itemIDFlag,
		Labels:     ontology.Text{},
		Comments:   ontology.Text{},
		SourceFile: cache.ResolvePath(itemFileFlag),
	}
	if itemLabelFlag != "" {
		item.Labels["en"] = itemLabelFlag
	}
	if itemLabelFrFlag != "" {
		item.Labels["fr"] = itemLabelFrFlag
	}
	if itemCommentFlag != "" {
		item.Comments["en"] = itemCommentFlag
	}
	if itemParentFlag != "" {
		parent, err := cache.Get(itemParentFlag)
		if err != nil {
			return err
		}
		item.Parent = parent
	}

	if err := cache.Add(item, itemForceFlag); err != nil {
		return err
	}
	if err := cache.DumpToJSON(); err != nil {
		return err
	}
	fmt.Printf("%s Added %s to %s\n", sym.File, item.ID, item.SourceFile)
	return nil
}
