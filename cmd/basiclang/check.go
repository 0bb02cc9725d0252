package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gracepriest/BasicLangvb-sub002/internal/compiler"
	"github.com/gracepriest/BasicLangvb-sub002/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [file.bas...]",
	Short: "Compile sources and report diagnostics",
	Long: `Check runs the full front end over the given sources. With no
arguments it looks for a ` + project.ManifestName + ` manifest and checks every
source file the project declares.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := resolveSources(args)
	if err != nil {
		return err
	}

	start := time.Now()
	failed := 0
	for _, file := range files {
		result, err := compiler.CompileFile(file)
		if err != nil {
			return err
		}
		diags := result.Diagnostics()
		if len(diags) > 0 {
			fmt.Fprint(os.Stderr, result.Format())
		}
		if !result.Success() {
			failed++
		}
	}

	duration := time.Since(start).Round(time.Microsecond)
	if failed > 0 {
		color.Red("%d of %d file(s) failed after %s", failed, len(files), duration)
		return fmt.Errorf("compilation failed")
	}
	color.Green("checked %d file(s) in %s", len(files), duration)
	return nil
}

// resolveSources turns the command arguments into the list of files to
// compile, falling back to the project manifest when none are given.
func resolveSources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	manifest, ok, err := project.LoadFrom(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no %s found; pass a source file explicitly", project.ManifestName)
	}
	files, err := manifest.SourceFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("project %q declares no source files", manifest.Config.Package.Name)
	}
	return files, nil
}
