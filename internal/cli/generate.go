package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/config"
	"github.com/mvp-joe/cmakegen/internal/planner"
	"github.com/mvp-joe/cmakegen/internal/render"
	"github.com/mvp-joe/cmakegen/internal/scanner"
	"github.com/mvp-joe/cmakegen/internal/watcher"
)

var (
	projectNameFlag string
	minVersionFlag  string
	forceFlag       bool
	quietFlag       bool
	watchFlag       bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [project_path]",
	Short: "Generate CMakeLists.txt files for a C/C++ project",
	Long: `Generate scans a C/C++ source tree, groups files into modules, detects the
program entry point and writes one CMakeLists.txt per module plus the root
build file.

Examples:
  # Generate build files for the current directory
  cmakegen generate

  # Name the project explicitly and overwrite existing build files
  cmakegen generate ~/src/myapp --project-name myapp --force

  # Keep regenerating while editing
  cmakegen generate --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&projectNameFlag, "project-name", "n", "", "Project name (defaults to directory name)")
	generateCmd.Flags().StringVarP(&minVersionFlag, "min-version", "m", "", "Minimum CMake version (overrides config)")
	generateCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing CMakeLists.txt files")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	generateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rootDir, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if minVersionFlag != "" {
		cfg.CMake.MinVersion = minVersionFlag
	}

	// Refuse to clobber hand-written build files unless asked to.
	rootBuildFile := filepath.Join(rootDir, render.BuildFileName)
	if _, err := os.Stat(rootBuildFile); err == nil && !forceFlag {
		printError("%s already exists in %s", render.BuildFileName, rootDir)
		printInfo("Use --force to overwrite existing files")
		return fmt.Errorf("%s already exists", render.BuildFileName)
	}

	if err := generateOnce(rootDir, *cfg); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}
	return watchAndRegenerate(rootDir, *cfg)
}

// generateOnce runs the full pipeline one time: scan, plan, render, write.
func generateOnce(rootDir string, cfg config.Config) error {
	if !quietFlag {
		printInfo("Scanning project structure in %s...", rootDir)
	}

	info, err := scanner.New(rootDir).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if !quietFlag {
		printInfo("Found %d source files and %d header files", len(info.Sources), len(info.Headers))
		printInfo("Detected %d modules", len(info.Modules))
		printInfo("Generating %s files...", render.BuildFileName)
	}

	plan := planner.New(rootDir, projectNameFlag).Plan(info)

	writer := render.NewWriter(rootDir, render.New(cfg))
	written, err := writer.WriteAll(plan)
	if err != nil {
		return err
	}

	if !quietFlag {
		printSuccess("Generated %d %s files:", len(written), render.BuildFileName)
		for _, path := range written {
			printPlain("  - %s", path)
		}
	}
	return nil
}

// watchAndRegenerate reruns the pipeline whenever classified files change,
// until interrupted.
func watchAndRegenerate(rootDir string, cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("Interrupted, stopping watch...")
		cancel()
	}()

	sc := scanner.New(rootDir)
	dirFilter := func(relPath string) bool {
		return !sc.ShouldIgnore(relPath)
	}
	fileFilter := func(relPath string) bool {
		if sc.ShouldIgnore(relPath) {
			return false
		}
		ext := filepath.Ext(relPath)
		return scanner.IsSourceExt(ext) || scanner.IsHeaderExt(ext)
	}

	fw, err := watcher.New(rootDir, dirFilter, fileFilter)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	err = fw.Start(ctx, func(files []string) {
		if !quietFlag {
			printInfo("%d file(s) changed, regenerating...", len(files))
		}
		if err := generateOnce(rootDir, cfg); err != nil {
			printError("Regeneration failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	if !quietFlag {
		printInfo("Watching %s for changes (Ctrl+C to stop)", rootDir)
	}
	<-ctx.Done()
	return nil
}

// resolveProjectPath turns the optional positional argument into an absolute
// existing directory path, defaulting to the working directory.
func resolveProjectPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid project path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project path %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %s is not a directory", abs)
	}
	return abs, nil
}
