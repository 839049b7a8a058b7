package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

var diffBy string

var diffCmd = &cobra.Command{
	Use:   "diff EXPRESSION",
	Short: "Differentiate an expression symbolically",
	Example: `  symexpr diff "x ^ 2" --by x
  symexpr diff "x * sin(x)" --by x`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffBy, "by", "x", "variable to differentiate with respect to")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	dom, err := selectedDomain()
	if err != nil {
		return err
	}
	expr, err := symexpr.Parse(args[0], dom)
	if err != nil {
		return err
	}
	d, err := expr.Diff(diffBy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}
