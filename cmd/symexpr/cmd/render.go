package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

var renderCmd = &cobra.Command{
	Use:   "render EXPRESSION",
	Short: "Print the canonical simplified form of an expression",
	Example: `  symexpr render "x + 0"
  symexpr render "2x(y + 1)"`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	dom, err := selectedDomain()
	if err != nil {
		return err
	}
	expr, err := symexpr.Parse(args[0], dom)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), expr)
	return nil
}
