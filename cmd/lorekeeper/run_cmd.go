package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fentz26/lorekeeper/internal/engine"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [command words...]",
	Short: "Run a single command",
	Long:  `Joins the arguments into one command line, runs it and prints the result, e.g. "lorekeeper run spell Fireball".`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	eng, closeJournal, err := openEngine(cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer closeJournal()

	line := strings.Join(args, " ")
	result, err := eng.Command(cmd.Context(), line)
	if errors.Is(err, engine.ErrUnknownCommand) {
		return fmt.Errorf("unknown command: %q", line)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
