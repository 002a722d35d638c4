package config

// Config holds the cmakegen settings. It is loaded once per invocation from
// ~/.cmakegen/config.yaml with environment variable overrides and passed by
// value into the planner and renderer; nothing reads it as process-wide state.
type Config struct {
	CMake     CMakeConfig     `yaml:"cmake" mapstructure:"cmake"`
	Compilers CompilersConfig `yaml:"compilers" mapstructure:"compilers"`
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
	Project   ProjectConfig   `yaml:"project" mapstructure:"project"`
}

// CMakeConfig configures the generated files and the cmake invocation.
type CMakeConfig struct {
	MinVersion string `yaml:"min_version" mapstructure:"min_version"` // cmake_minimum_required version
	Generator  string `yaml:"generator" mapstructure:"generator"`     // -G argument, empty lets cmake pick
	BuildType  string `yaml:"build_type" mapstructure:"build_type"`   // CMAKE_BUILD_TYPE
}

// CompilersConfig names the toolchain programs.
type CompilersConfig struct {
	CCompiler   string `yaml:"c_compiler" mapstructure:"c_compiler"`
	CXXCompiler string `yaml:"cxx_compiler" mapstructure:"cxx_compiler"`
	MakeProgram string `yaml:"make_program" mapstructure:"make_program"`
}

// PathsConfig holds optional toolchain install locations.
type PathsConfig struct {
	MinGWRoot    string `yaml:"mingw_root" mapstructure:"mingw_root"`
	VisualStudio string `yaml:"visual_studio" mapstructure:"visual_studio"`
	MSBuild      string `yaml:"msbuild" mapstructure:"msbuild"`
}

// ProjectConfig configures the language standard block of the root
// CMakeLists.txt.
type ProjectConfig struct {
	CppStandard   string `yaml:"cpp_standard" mapstructure:"cpp_standard"`
	CXXRequired   bool   `yaml:"cxx_required" mapstructure:"cxx_required"`
	CXXExtensions bool   `yaml:"cxx_extensions" mapstructure:"cxx_extensions"`
}

// SupportedCppStandards lists the accepted values for cpp_standard.
var SupportedCppStandards = []string{"11", "14", "17", "20", "23"}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		CMake: CMakeConfig{
			MinVersion: "3.10",
			Generator:  "",
			BuildType:  "Release",
		},
		Compilers: CompilersConfig{
			CCompiler:   "gcc",
			CXXCompiler: "g++",
			MakeProgram: "make",
		},
		Paths: PathsConfig{},
		Project: ProjectConfig{
			CppStandard:   "11",
			CXXRequired:   true,
			CXXExtensions: false,
		},
	}
}
