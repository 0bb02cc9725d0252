package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gracepriest/BasicLangvb-sub002/internal/compiler"
	"github.com/gracepriest/BasicLangvb-sub002/internal/ir"
)

var irCmd = &cobra.Command{
	Use:   "ir file.bas",
	Short: "Lower a source file and print its intermediate representation",
	Long: `IR compiles one source file through scanning, parsing, semantic
analysis, and lowering, then prints the resulting control-flow graph in
versioned-value form.`,
	Args: cobra.ExactArgs(1),
	RunE: runIR,
}

func runIR(cmd *cobra.Command, args []string) error {
	result, err := compiler.CompileFile(args[0])
	if err != nil {
		return err
	}
	if diags := result.Diagnostics(); len(diags) > 0 {
		fmt.Fprint(os.Stderr, result.Format())
	}
	if !result.Success() {
		return fmt.Errorf("compilation failed")
	}
	fmt.Print(ir.Print(result.Module))
	return nil
}
