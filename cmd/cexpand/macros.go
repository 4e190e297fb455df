package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cexpand/internal/driver"
)

var macrosCmd = &cobra.Command{
	Use:   "macros [flags] file.c",
	Short: "List the macros a file defines",
	Long:  `Macros preprocesses a C source file and prints every macro definition that is still live at end of file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMacros,
}

func init() {
	macrosCmd.Flags().StringArrayP("define", "D", nil, "predefine a macro (NAME or NAME=VALUE)")
	macrosCmd.Flags().StringArrayP("include-dir", "I", nil, "add a directory to the include search path")
	macrosCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runMacros(cmd *cobra.Command, args []string) error {
	defines, _ := cmd.Flags().GetStringArray("define")
	includeDirs, _ := cmd.Flags().GetStringArray("include-dir")
	format, _ := cmd.Flags().GetString("format")

	result, err := driver.Macros(args[0], driver.Options{
		Defines:        defines,
		IncludeDirs:    includeDirs,
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	if err != nil {
		return fmt.Errorf("preprocessing failed: %w", err)
	}

	switch format {
	case "pretty":
		for _, m := range result.Infos {
			if m.Body == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "#define %s%s\n", m.Name, m.Params)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "#define %s%s %s\n", m.Name, m.Params, m.Body)
			}
		}
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Infos); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		printDiagnostics(cmd, result.Bag, result.FileSet)
	}
	return nil
}
