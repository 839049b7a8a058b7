package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

var domainFlag string

var rootCmd = &cobra.Command{
	Use:   "symexpr",
	Short: "Symbolic expression calculator",
	Long: `symexpr parses arithmetic and trigonometric expressions, evaluates
them under variable bindings, and computes symbolic derivatives.

Expressions support + - * / ^, sin, cos, ln, exp, implicit
multiplication ("2x") and unary minus. The numeric domain is real by
default; pass --domain complex for complex arithmetic, where the name
"i" is the imaginary unit.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&domainFlag, "domain", "real", "numeric domain: real or complex")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func selectedDomain() (symexpr.Domain, error) {
	switch domainFlag {
	case "real":
		return symexpr.Reals, nil
	case "complex":
		return symexpr.Complexes, nil
	}
	return symexpr.Reals, fmt.Errorf("unknown domain %q (want real or complex)", domainFlag)
}

// parseBindings turns repeated name=value flags into a bindings map.
// Complex values use Go literal syntax, e.g. x=1+2i.
func parseBindings(dom symexpr.Domain, pairs []string) (map[string]symexpr.Value, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]symexpr.Value, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad binding %q (want name=value)", pair)
		}
		if dom == symexpr.Complexes {
			c, err := strconv.ParseComplex(raw, 128)
			if err != nil {
				return nil, fmt.Errorf("bad value for %s: %v", name, err)
			}
			vars[name] = symexpr.Complex(c)
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value for %s: %v", name, err)
		}
		vars[name] = symexpr.Real(f)
	}
	return vars, nil
}
