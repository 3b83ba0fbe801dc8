package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/calc"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a calc document for parse and evaluation errors",
		Long: `Check a calc document for parse and evaluation errors.

A calc document holds one expression per line. Blank lines and lines
starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}

	return cmd
}

func runCheck(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	issues := calc.CheckDocument(string(data))
	for _, issue := range issues {
		fmt.Printf("%s:%d:%d: %s\n", path, issue.Line+1, issue.Column+1, issue.Message)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d problems found", len(issues))
	}

	fmt.Printf("%s: ok\n", path)
	return nil
}
