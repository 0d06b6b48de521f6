package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/RogersPyke/robocoin-visualizer/audio"
	"github.com/RogersPyke/robocoin-visualizer/dataset"
	"github.com/RogersPyke/robocoin-visualizer/logging"
	"github.com/RogersPyke/robocoin-visualizer/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <dataset-root>",
	Short: "Browse a dataset interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logging.Get()

	cat, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return fmt.Errorf("dataset %s contains no records", args[0])
	}
	logger.Printf("loaded %d records from %s", cat.Len(), args[0])

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()

	// The terminal must be restored on any exit path, panics included,
	// or the shell is left on the alternate screen.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "robocoin crashed: %v\n", r)
			os.Exit(1)
		}
		screen.Fini()
	}()

	cues := audio.NewCues(cfg.Audio.Enabled)
	if err := cues.Initialize(); err != nil {
		logger.Printf("audio unavailable: %v", err)
	}
	defer cues.Cleanup()

	return ui.New(screen, cfg, cat, cues, logger).Run()
}
