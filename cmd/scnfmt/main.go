// Command scnfmt validates a format string against a caller-supplied list
// of argument type names and reports whether it is well-formed, without
// actually scanning anything. It exists for local tooling/CI use: catching
// a broken format string in a script before it ever reaches a real scn.Scan
// call.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/spf13/cobra"
)

var typesFlag string

var rootCmd = &cobra.Command{
	Use:   "scnfmt <format-string>",
	Short: "Validate a scn format string against a list of argument types",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&typesFlag, "types", "t", "",
		"comma-separated argument type names (int, uint, float, bool, char, string, regex, pointer)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var typeNames = map[string]argtype.ArgType{
	"int":     argtype.Int64,
	"uint":    argtype.Uint64,
	"float":   argtype.Float64,
	"bool":    argtype.Bool,
	"char":    argtype.Rune,
	"string":  argtype.String,
	"regex":   argtype.RegexMatches,
	"pointer": argtype.Pointer,
}

func run(cmd *cobra.Command, fmtArgs []string) error {
	checked, perr := format.Parse(fmtArgs[0])
	if perr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), perr.Error())
		return perr
	}

	var types []argtype.ArgType
	if typesFlag != "" {
		for _, name := range strings.Split(typesFlag, ",") {
			t, ok := typeNames[strings.TrimSpace(name)]
			if !ok {
				return fmt.Errorf("unknown type name %q", name)
			}
			types = append(types, t)
		}
	}

	if len(types) > 0 {
		cerr := checked.CheckAgainst(func(idx int) (argtype.Category, bool) {
			if idx < 0 || idx >= len(types) {
				return 0, false
			}
			return argtype.CategoryOf(types[idx]), true
		})
		if cerr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), cerr.Error())
			return cerr
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
