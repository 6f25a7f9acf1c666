package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/exa-atow/ontogen/config"
	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/logger"
	"github.com/exa-atow/ontogen/sym"
)

var watchOutFlag string

// WatchCmd rebuilds the graph whenever a definition file changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: sym.Watch + " Rebuild the ontology when definition files change",
	Long: sym.Watch + ` watch — Continuous rebuild

Watches the configured files directory and reassembles the graph whenever
a JSON definition file is written. With --out the result is serialized to
that file after every successful rebuild. Runs until interrupted.

Examples:
  ontogen watch
  ontogen watch --out onto.nq -v`,
	RunE: runWatch,
}

func init() {
	addDefinitionFlags(WatchCmd)
	WatchCmd.Flags().StringVar(&watchOutFlag, "out", "", "Serialize to this file after each rebuild")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if _, err := os.Stat(cfg.FilesDir); err != nil {
		return errors.Wrapf(err, "files directory %s is not watchable", cfg.FilesDir)
	}

	log := logger.Logger.Named("watch")

	rebuild := func(path string) error {
		o, err := buildOntology()
		if err != nil {
			return err
		}
		stats := o.Stats()
		log.Infow("ontology rebuilt", "trigger", path, "statements", stats.Statements)
		if watchOutFlag != "" {
			format := cfg.Format
			if err := o.SerializeToFile(watchOutFlag, format); err != nil {
				return err
			}
			log.Infow("serialized", "file", watchOutFlag, "format", format)
		}
		return nil
	}

	// One build up front so an --out file exists before the first change.
	if err := rebuild("startup"); err != nil {
		return err
	}

	watcher, err := config.NewFilesWatcher(cfg.FilesDir)
	if err != nil {
		return err
	}
	watcher.OnChange(rebuild)
	watcher.Start()
	defer watcher.Stop()

	fmt.Printf("%s Watching %s (ctrl-c to stop)\n", sym.Watch, cfg.FilesDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopping watcher")
	return nil
}
