package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/cmakegen/internal/planner"
)

// BuildFileName is the file the writer emits in the root and in every
// non-root module directory.
const BuildFileName = "CMakeLists.txt"

// Writer renders a plan and writes the resulting build files under the
// project root.
type Writer struct {
	rootDir  string
	renderer *Renderer
}

// NewWriter creates a writer for the given project root.
func NewWriter(rootDir string, renderer *Renderer) *Writer {
	return &Writer{rootDir: rootDir, renderer: renderer}
}

// WriteAll writes the root build file plus one per non-root module target and
// returns the root-relative slash paths of everything written.
func (w *Writer) WriteAll(plan *planner.Plan) ([]string, error) {
	written := []string{}

	rootPath := filepath.Join(w.rootDir, BuildFileName)
	if err := os.WriteFile(rootPath, []byte(w.renderer.RootFile(plan)), 0644); err != nil {
		return written, fmt.Errorf("failed to write %s: %w", BuildFileName, err)
	}
	written = append(written, BuildFileName)

	for _, target := range plan.ModuleTargets() {
		moduleDir := filepath.Join(w.rootDir, filepath.FromSlash(target.Dir))
		if err := os.MkdirAll(moduleDir, 0755); err != nil {
			return written, fmt.Errorf("failed to create module directory %s: %w", target.Dir, err)
		}

		modulePath := filepath.Join(moduleDir, BuildFileName)
		if err := os.WriteFile(modulePath, []byte(w.renderer.ModuleFile(target)), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s/%s: %w", target.Dir, BuildFileName, err)
		}
		written = append(written, target.Dir+"/"+BuildFileName)
	}

	return written, nil
}
