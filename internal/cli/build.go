package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/cmake"
)

var cleanFlag bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [project_path]",
	Short: "Build a C/C++ project using CMake",
	Long: `Build configures the project with cmake in an out-of-tree build directory,
runs the configured make program and, on success, runs the produced
executable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&cleanFlag, "clean", "c", false, "Clean build directory before building")
}

func runBuild(cmd *cobra.Command, args []string) error {
	rootDir, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("Interrupted, cancelling build...")
		cancel()
	}()

	runner := cmake.NewRunner(rootDir, *cfg, os.Stdout, os.Stderr)

	if cleanFlag {
		printInfo("Cleaning build directory: %s", runner.BuildDir())
		if err := runner.Clean(); err != nil {
			return fmt.Errorf("failed to clean build directory: %w", err)
		}
	}

	printInfo("Configuring project in %s...", runner.BuildDir())
	if err := runner.Configure(ctx); err != nil {
		printError("CMake configuration failed: %v", err)
		return err
	}
	printSuccess("Project configured successfully")

	printInfo("Building project...")
	if err := runner.Build(ctx); err != nil {
		printError("Build failed: %v", err)
		return err
	}
	printSuccess("Project built successfully")

	projectName := filepath.Base(rootDir)
	printInfo("Running %s...", projectName)
	code, err := runner.RunExecutable(ctx, projectName)
	if err != nil {
		printWarning("No executable found to run")
		return nil
	}
	if code == 0 {
		printSuccess("Program executed successfully")
	} else {
		printWarning("Program exited with code: %d", code)
	}
	return nil
}
