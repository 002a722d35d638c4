package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading and persistence.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)

	// Save writes the configuration back to the config file, creating the
	// config directory if needed.
	Save(cfg *Config) error

	// Path returns the config file path the loader reads and writes.
	Path() string
}

type loader struct {
	configFile string
}

// NewLoader creates a loader for the default config file,
// ~/.cmakegen/config.yaml.
func NewLoader() (Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewLoaderForFile(filepath.Join(home, ".cmakegen", "config.yaml")), nil
}

// NewLoaderForFile creates a loader for an explicit config file path.
func NewLoaderForFile(configFile string) Loader {
	return &loader{configFile: configFile}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CMAKEGEN_*)
// 2. Config file (~/.cmakegen/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(l.configFile)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CMAKEGEN")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., CMAKEGEN_PROJECT_CPP_STANDARD)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("cmake.min_version")
	v.BindEnv("cmake.generator")
	v.BindEnv("cmake.build_type")
	v.BindEnv("compilers.c_compiler")
	v.BindEnv("compilers.cxx_compiler")
	v.BindEnv("compilers.make_program")
	v.BindEnv("paths.mingw_root")
	v.BindEnv("project.cpp_standard")
	v.BindEnv("project.cxx_required")
	v.BindEnv("project.cxx_extensions")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable; defaults + env apply.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save persists the configuration to the config file.
func (l *loader) Save(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("cmake.min_version", cfg.CMake.MinVersion)
	v.Set("cmake.generator", cfg.CMake.Generator)
	v.Set("cmake.build_type", cfg.CMake.BuildType)
	v.Set("compilers.c_compiler", cfg.Compilers.CCompiler)
	v.Set("compilers.cxx_compiler", cfg.Compilers.CXXCompiler)
	v.Set("compilers.make_program", cfg.Compilers.MakeProgram)
	v.Set("paths.mingw_root", cfg.Paths.MinGWRoot)
	v.Set("paths.visual_studio", cfg.Paths.VisualStudio)
	v.Set("paths.msbuild", cfg.Paths.MSBuild)
	v.Set("project.cpp_standard", cfg.Project.CppStandard)
	v.Set("project.cxx_required", cfg.Project.CXXRequired)
	v.Set("project.cxx_extensions", cfg.Project.CXXExtensions)

	if err := v.WriteConfigAs(l.configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (l *loader) Path() string {
	return l.configFile
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("cmake.min_version", defaults.CMake.MinVersion)
	v.SetDefault("cmake.generator", defaults.CMake.Generator)
	v.SetDefault("cmake.build_type", defaults.CMake.BuildType)

	v.SetDefault("compilers.c_compiler", defaults.Compilers.CCompiler)
	v.SetDefault("compilers.cxx_compiler", defaults.Compilers.CXXCompiler)
	v.SetDefault("compilers.make_program", defaults.Compilers.MakeProgram)

	v.SetDefault("paths.mingw_root", defaults.Paths.MinGWRoot)
	v.SetDefault("paths.visual_studio", defaults.Paths.VisualStudio)
	v.SetDefault("paths.msbuild", defaults.Paths.MSBuild)

	v.SetDefault("project.cpp_standard", defaults.Project.CppStandard)
	v.SetDefault("project.cxx_required", defaults.Project.CXXRequired)
	v.SetDefault("project.cxx_extensions", defaults.Project.CXXExtensions)
}
