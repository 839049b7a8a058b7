package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate an expression under variable bindings",
	Example: `  symexpr eval "2 + 3 * 4"
  symexpr eval "x ^ 2 + 1" --var x=3
  symexpr eval --domain complex "i * i"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable binding name=value (repeatable)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	dom, err := selectedDomain()
	if err != nil {
		return err
	}
	expr, err := symexpr.Parse(args[0], dom)
	if err != nil {
		return err
	}
	vars, err := parseBindings(dom, evalVars)
	if err != nil {
		return err
	}
	v, err := expr.Eval(vars)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
