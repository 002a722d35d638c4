// Package cmake invokes the external build tool on a generated project. The
// analysis pipeline never depends on it; it exists for the build command.
package cmake

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mvp-joe/cmakegen/internal/config"
)

// BuildDirName is the out-of-tree build directory created under the project
// root.
const BuildDirName = "build"

// Runner configures and builds a project with cmake and the configured make
// program.
type Runner struct {
	rootDir string
	cfg     config.Config
	stdout  io.Writer
	stderr  io.Writer
}

// NewRunner creates a runner for the given project root. Command output goes
// to stdout/stderr.
func NewRunner(rootDir string, cfg config.Config, stdout, stderr io.Writer) *Runner {
	return &Runner{rootDir: rootDir, cfg: cfg, stdout: stdout, stderr: stderr}
}

// BuildDir returns the absolute build directory path.
func (r *Runner) BuildDir() string {
	return filepath.Join(r.rootDir, BuildDirName)
}

// ConfigureArgs derives the cmake command-line arguments from settings:
// generator, build type and toolchain overrides when a MinGW root is
// configured and the programs actually exist there.
func (r *Runner) ConfigureArgs() []string {
	args := []string{}

	if r.cfg.CMake.Generator != "" {
		args = append(args, "-G", r.cfg.CMake.Generator)
	}
	if r.cfg.CMake.BuildType != "" {
		args = append(args, "-DCMAKE_BUILD_TYPE="+r.cfg.CMake.BuildType)
	}

	if root := r.cfg.Paths.MinGWRoot; root != "" {
		if p, ok := toolchainProgram(root, r.cfg.Compilers.CCompiler); ok {
			args = append(args, "-DCMAKE_C_COMPILER="+p)
		}
		if p, ok := toolchainProgram(root, r.cfg.Compilers.CXXCompiler); ok {
			args = append(args, "-DCMAKE_CXX_COMPILER="+p)
		}
		if p, ok := toolchainProgram(root, r.cfg.Compilers.MakeProgram); ok {
			args = append(args, "-DCMAKE_MAKE_PROGRAM="+p)
		}
	}

	return args
}

// MakeCommand returns the make program to run, preferring the configured
// toolchain directory when the program exists there.
func (r *Runner) MakeCommand() string {
	if root := r.cfg.Paths.MinGWRoot; root != "" {
		if p, ok := toolchainProgram(root, r.cfg.Compilers.MakeProgram); ok {
			return p
		}
	}
	return r.cfg.Compilers.MakeProgram
}

// Clean removes the build directory.
func (r *Runner) Clean() error {
	return os.RemoveAll(r.BuildDir())
}

// Configure creates the build directory and runs the cmake configure step.
func (r *Runner) Configure(ctx context.Context) error {
	buildDir := r.BuildDir()
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	args := append([]string{".."}, r.ConfigureArgs()...)
	cmd := exec.CommandContext(ctx, "cmake", args...)
	cmd.Dir = buildDir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cmake configuration failed: %w", err)
	}
	return nil
}

// Build runs the configured make program in the build directory.
func (r *Runner) Build(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.MakeCommand())
	cmd.Dir = r.BuildDir()
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// RunExecutable runs the produced program named after the project, if it
// exists in the build directory. Returns the program's exit code.
func (r *Runner) RunExecutable(ctx context.Context, projectName string) (int, error) {
	path, ok := executablePath(r.BuildDir(), projectName)
	if !ok {
		return 0, fmt.Errorf("no executable named %s found in %s", projectName, r.BuildDir())
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = r.BuildDir()
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

// toolchainProgram probes <root>/bin for a program, with the .exe suffix on
// Windows toolchains.
func toolchainProgram(root, program string) (string, bool) {
	if program == "" {
		return "", false
	}
	candidates := []string{
		filepath.Join(root, "bin", program+".exe"),
		filepath.Join(root, "bin", program),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, true
		}
	}
	return "", false
}

func executablePath(buildDir, projectName string) (string, bool) {
	candidates := []string{filepath.Join(buildDir, projectName)}
	if runtime.GOOS == "windows" {
		candidates = []string{filepath.Join(buildDir, projectName+".exe")}
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, true
		}
	}
	return "", false
}
