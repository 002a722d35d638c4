package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/scanner"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [project_path]",
	Short: "Scan and display project structure",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	rootDir, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	printInfo("Scanning project structure in %s...", rootDir)
	info, err := scanner.New(rootDir).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printSuccess("Found %d source files and %d header files", len(info.Sources), len(info.Headers))
	printSuccess("Detected %d modules", len(info.Modules))

	printPlain("\nModules:")
	for _, dir := range info.ModuleOrder {
		mod := info.Modules[dir]
		name := dir
		if name == "" {
			name = "(root)"
		}
		printPlain("  - %s: %d source files, %d header files", name, len(mod.Sources), len(mod.Headers))
	}
	return nil
}
