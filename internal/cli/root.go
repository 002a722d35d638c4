package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cmakegen/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cmakegen",
	Short: "CMake build-description generator for C/C++ projects",
	Long: `cmakegen inspects a C/C++ source tree, infers its modular structure and
include dependencies, and generates CMakeLists.txt files that reproduce that
structure as buildable targets.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cmakegen/config.yaml)")
}

// newLoader returns the settings loader, honoring the --config flag.
func newLoader() (config.Loader, error) {
	if cfgFile != "" {
		return config.NewLoaderForFile(cfgFile), nil
	}
	return config.NewLoader()
}

// loadSettings loads the effective settings for one invocation.
func loadSettings() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
