package main

import (
	"io"

	"github.com/fentz26/lorekeeper/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long:  `Opens an interactive terminal with a command prompt, live autocomplete and a scrolling output pane.`,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal; logs would corrupt it.
	eng, closeJournal, err := openEngine(cfg, newLogger(io.Discard))
	if err != nil {
		return err
	}
	defer closeJournal()

	return tui.New(cmd.Context(), eng).Run()
}
