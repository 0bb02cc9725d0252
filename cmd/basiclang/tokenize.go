package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gracepriest/BasicLangvb-sub002/internal/compiler"
	"github.com/gracepriest/BasicLangvb-sub002/internal/parser"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize file.bas",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	scanner := parser.NewScanner(string(source))
	tokens := scanner.ScanTokens()

	if scanErrs := scanner.Errors(); len(scanErrs) > 0 {
		result := compiler.Compile(path, string(source))
		fmt.Fprint(os.Stderr, result.Format())
		return fmt.Errorf("tokenization failed")
	}

	for _, tok := range tokens {
		lexeme := tok.Lexeme
		if lexeme != "" {
			lexeme = " " + lexeme
		}
		fmt.Printf("%4d:%-3d %s%s\n", tok.Position.Line, tok.Position.Column, tok.Type, lexeme)
	}
	return nil
}
