package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/config"
)

// configCmd groups the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		printInfo("Current Configuration:")
		printInfo("========================================")
		printInfo("CMake Generator: %s", cfg.CMake.Generator)
		printInfo("CMake Min Version: %s", cfg.CMake.MinVersion)
		printInfo("Build Type: %s", cfg.CMake.BuildType)
		printInfo("C++ Standard: %s", cfg.Project.CppStandard)
		printInfo("MinGW Root: %s", cfg.Paths.MinGWRoot)
		printInfo("C Compiler: %s", cfg.Compilers.CCompiler)
		printInfo("CXX Compiler: %s", cfg.Compilers.CXXCompiler)
		printInfo("Make Program: %s", cfg.Compilers.MakeProgram)
		printInfo("========================================")
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		if err := loader.Save(config.Default()); err != nil {
			return err
		}
		printSuccess("Configuration initialized at: %s", loader.Path())
		printInfo("Edit the file directly or use 'cmakegen config set-*' commands")
		return nil
	},
}

var configSetMinGWCmd = &cobra.Command{
	Use:   "set-mingw <path>",
	Short: "Set MinGW root path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := updateConfig(func(cfg *config.Config) {
			cfg.Paths.MinGWRoot = path
		}); err != nil {
			return err
		}
		printSuccess("MinGW path set to: %s", path)
		return nil
	},
}

var configSetGeneratorCmd = &cobra.Command{
	Use:   "set-generator <generator>",
	Short: "Set CMake generator (e.g., 'Unix Makefiles', 'Ninja', 'MinGW Makefiles')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := updateConfig(func(cfg *config.Config) {
			cfg.CMake.Generator = args[0]
		}); err != nil {
			return err
		}
		printSuccess("CMake generator set to: %s", args[0])
		return nil
	},
}

var configSetCppStandardCmd = &cobra.Command{
	Use:   "set-cpp-standard <standard>",
	Short: "Set C++ standard (11, 14, 17, 20 or 23)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := updateConfig(func(cfg *config.Config) {
			cfg.Project.CppStandard = args[0]
		}); err != nil {
			return fmt.Errorf("failed to set C++ standard: %w", err)
		}
		printSuccess("C++ standard set to: %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetMinGWCmd)
	configCmd.AddCommand(configSetGeneratorCmd)
	configCmd.AddCommand(configSetCppStandardCmd)
}

// updateConfig loads the current settings, applies one mutation and persists
// the result. Validation happens on save, so an invalid value never lands in
// the file.
func updateConfig(mutate func(*config.Config)) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	mutate(cfg)
	return loader.Save(cfg)
}
