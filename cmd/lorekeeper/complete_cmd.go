package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [partial input...]",
	Short: "Print autocomplete suggestions for partial input",
	Long:  `Prints one suggestion per line as the label and its summary separated by a tab.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	eng, closeJournal, err := openEngine(cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer closeJournal()

	out := cmd.OutOrStdout()
	for _, s := range eng.Autocomplete(cmd.Context(), strings.Join(args, " ")) {
		fmt.Fprintf(out, "%s\t%s\n", s.Label, s.Summary)
	}
	return nil
}
