package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/calc"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server for calc documents over stdio",
		Long: `Run a language server for calc documents over stdio.

The server publishes parse and evaluation diagnostics on document open
and change. Point an LSP client at this command to get live feedback
while editing calc documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc.NewLSPServer(version).RunStdio()
		},
	}

	return cmd
}
