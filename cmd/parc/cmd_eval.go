package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parc/calc"
)

func newEvalCmd() *cobra.Command {
	var traceParse bool

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression.

Supported syntax: integer literals, unary + and -, postfix ! (factorial),
binary + - * / %, right-associative ^ and the non-associative comparison ==.

Examples:
  parc eval '2+3*4'
  parc eval '2^3^2'
  parc eval --trace '(1+2)*3'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args[0], traceParse)
		},
	}

	cmd.Flags().BoolVar(&traceParse, "trace", false, "log parser entry/exit while parsing")

	return cmd
}

func runEval(expr string, traceParse bool) error {
	var opts []calc.Option
	if traceParse {
		commonlog.Configure(2, nil)
		opts = append(opts, calc.WithTrace())
	}

	value, err := calc.Eval(expr, opts...)
	if err != nil {
		return fmt.Errorf("evaluate %q: %w", expr, err)
	}

	fmt.Println(value)
	return nil
}
