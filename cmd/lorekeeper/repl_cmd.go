package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fentz26/lorekeeper/internal/engine"
	"github.com/spf13/cobra"
)

var replQuiet bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read commands line by line from stdin",
	Long:  `Runs each line of standard input as one command and prints the result. Suitable for piping and scripts.`,
	RunE:  runREPL,
}

func init() {
	replCmd.Flags().BoolVarP(&replQuiet, "quiet", "q", false, "do not print a prompt")
}

func runREPL(cmd *cobra.Command, args []string) error {
	eng, closeJournal, err := openEngine(cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer closeJournal()

	return repl(cmd, eng, cmd.InOrStdin(), cmd.OutOrStdout(), replQuiet)
}

func repl(cmd *cobra.Command, eng *engine.Engine, in io.Reader, out io.Writer, quiet bool) error {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(in)
	for {
		if !quiet {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit", "exit":
			return nil
		}

		result, err := eng.Command(ctx, line)
		switch {
		case errors.Is(err, engine.ErrUnknownCommand):
			fmt.Fprintf(out, "! Unknown command: %q\n\n", line)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "%s\n\n", result)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	if !quiet {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
