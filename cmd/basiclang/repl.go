package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gracepriest/BasicLangvb-sub002/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}
