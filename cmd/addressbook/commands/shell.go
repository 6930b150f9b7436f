package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	abcommands "addressbook/internal/commands"
)

const (
	welcome = "Address book ready. Type 'help' for the list of commands."
	prompt  = "> "
)

// shell: read command lines from stdin until exit or EOF.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive command loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, welcome)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res := runLine(cmd, out, line)
		if res.Exit {
			return nil
		}
	}
}

// runLine executes one command line and prints its feedback or error.
// Errors are shown to the user and never stop the loop.
func runLine(cmd *cobra.Command, out io.Writer, line string) abcommands.Result {
	res, err := service.Execute(cmd.Context(), line)
	if res.Feedback != "" {
		fmt.Fprintln(out, res.Feedback)
	}
	if err != nil {
		fmt.Fprintln(out, err.Error())
	}
	return res
}
