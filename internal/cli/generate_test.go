package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/cmakegen/internal/config"
)

// Test Plan for generate:
// - generateOnce runs the full pipeline and writes build files
// - The generated root file reflects the detected structure
// - resolveProjectPath rejects files and missing paths

func TestGenerateOnce_EndToEnd(t *testing.T) {
	quietFlag = true
	projectNameFlag = "demo"
	t.Cleanup(func() {
		quietFlag = false
		projectNameFlag = ""
	})

	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "main.cpp", "int main() {\n    return 0;\n}\n")
	writeTestFile(t, tmpDir, "util.cpp", "int helper();\n")
	writeTestFile(t, tmpDir, "util.h", "")
	writeTestFile(t, tmpDir, "lib/foo.cpp", "int foo();\n")
	writeTestFile(t, tmpDir, "lib/foo.h", "")

	require.NoError(t, generateOnce(tmpDir, *config.Default()))

	rootContent, err := os.ReadFile(filepath.Join(tmpDir, "CMakeLists.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(rootContent), "project(demo C CXX)")
	assert.Contains(t, string(rootContent), "add_subdirectory(lib)")
	assert.Contains(t, string(rootContent), "target_link_libraries(${PROJECT_NAME} lib)")

	libContent, err := os.ReadFile(filepath.Join(tmpDir, "lib", "CMakeLists.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(libContent), "add_library(lib ${lib_SOURCES})")
}

func TestResolveProjectPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	resolved, err := resolveProjectPath([]string{tmpDir})
	require.NoError(t, err)
	assert.Equal(t, tmpDir, resolved)

	_, err = resolveProjectPath([]string{filepath.Join(tmpDir, "missing")})
	assert.Error(t, err)

	file := filepath.Join(tmpDir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte{}, 0644))
	_, err = resolveProjectPath([]string{file})
	assert.Error(t, err)
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
