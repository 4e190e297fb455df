package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cexpand/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cexpand",
	Short: "C macro expansion rewriter",
	Long:  `cexpand rewrites macro invocations in C sources into their expansions while keeping comments, whitespace, and preprocessor directives in place`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(macrosCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
