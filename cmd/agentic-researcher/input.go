package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// readText returns the tool input: the --file contents when set, else the
// joined arguments, else everything on stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// printResult writes a tool Result, ending it with a newline.
func printResult(w io.Writer, res types.Result) {
	fmt.Fprint(w, res.Text)
	if !strings.HasSuffix(res.Text, "\n") {
		fmt.Fprintln(w)
	}
}
