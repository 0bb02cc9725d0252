package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "basiclang",
	Short: "BasicLang compiler front end",
	Long:  "basiclang checks, tokenizes, and lowers BasicLang source files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch mode, _ := cmd.Root().PersistentFlags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
	},
}

func main() {
	rootCmd.Version = version
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(irCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
