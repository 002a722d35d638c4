package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/depgraph"
	"github.com/mvp-joe/cmakegen/internal/scanner"
)

var transitiveFlag bool

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [project_path]",
	Short: "Analyze dependencies between source files",
	Long: `Analyze parses the #include directives of every source file and resolves
them against the headers implemented in the tree, printing which source files
depend on which. With --transitive the full reachable set is shown instead of
only direct dependencies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&transitiveFlag, "transitive", "t", false, "Show transitively-closed dependency sets")
	analyzeCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rootDir, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	printInfo("Scanning project structure in %s...", rootDir)
	info, err := scanner.New(rootDir).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printInfo("Analyzing dependencies...")
	analyzer := depgraph.NewAnalyzer(rootDir, depgraph.WithProgress(NewCLIProgressReporter(quietFlag)))
	graph, err := analyzer.Analyze(info.Sources, info.Headers)
	if err != nil {
		return fmt.Errorf("dependency analysis failed: %w", err)
	}

	printPlain("\nDependencies:")
	for _, source := range graph.Sources() {
		deps := graph.Direct(source)
		if transitiveFlag {
			deps, err = graph.Closure(source)
			if err != nil {
				return err
			}
		}

		if len(deps) == 0 {
			printPlain("  - %s has no dependencies", source)
			continue
		}
		printPlain("  - %s depends on:", source)
		for _, dep := range deps {
			printPlain("    - %s", dep)
		}
	}
	return nil
}
