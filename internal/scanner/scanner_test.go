package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Scanner:
// - Classification by extension, case-insensitive
// - Unclassified files are ignored
// - Ignore rules skip VCS/IDE/build/CMake subtrees and files
// - Modules keyed by root-relative dir, root is the empty string
// - Module map only contains directories with classified files
// - IncludeDirs records directories containing headers
// - ModuleOrder is root first, then lexical
// - Scanning twice yields identical results
// - Empty tree yields empty module map, not an error

// writeFiles creates the given relative files (empty content) under root.
func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte{}, 0644))
	}
}

func TestScanner_ClassifiesByExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"main.cpp", "legacy.c", "wide.cc", "old.cxx", "odd.c++",
		"api.h", "impl.hpp", "wide.hh", "old.hxx", "odd.h++",
		"README.md", "notes.txt", "Makefile",
	)

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.Len(t, info.Sources, 5)
	assert.Len(t, info.Headers, 5)
	assert.Contains(t, info.Sources, "main.cpp")
	assert.Contains(t, info.Headers, "odd.h++")
}

func TestScanner_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "Main.CPP", "API.H")

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"Main.CPP"}, info.Sources)
	assert.Equal(t, []string{"API.H"}, info.Headers)
}

func TestScanner_IgnoreRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"main.cpp",
		".git/objects/blob.c",
		".vscode/settings.c",
		"build/generated.cpp",
		"cmake-build-debug/out.cpp",
		"CMakeFiles/probe.c",
		"toolchain.cmake",
		"CMakeCache.txt",
		"lib/foo.cpp",
	)

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"main.cpp", "lib/foo.cpp"}, info.Sources)
	assert.NotContains(t, info.Modules, ".git/objects")
	assert.NotContains(t, info.Modules, "build")
}

func TestScanner_ModulesKeyedByDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"main.cpp", "util.cpp", "util.h",
		"lib/foo.cpp", "lib/foo.h",
		"docs/guide.md", // no classified files: no module
	)

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	require.Len(t, info.Modules, 2)

	root := info.Modules[""]
	require.NotNil(t, root)
	assert.ElementsMatch(t, []string{"main.cpp", "util.cpp"}, root.Sources)
	assert.ElementsMatch(t, []string{"util.h"}, root.Headers)

	lib := info.Modules["lib"]
	require.NotNil(t, lib)
	assert.ElementsMatch(t, []string{"lib/foo.cpp"}, lib.Sources)
	assert.ElementsMatch(t, []string{"lib/foo.h"}, lib.Headers)

	assert.NotContains(t, info.Modules, "docs")
}

func TestScanner_IncludeDirs(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.cpp", "inc/types.h", "src/impl.cpp")

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.True(t, info.IncludeDirs["inc"])
	assert.False(t, info.IncludeDirs[""], "root has no headers")
	assert.False(t, info.IncludeDirs["src"], "src has no headers")
}

func TestScanner_ModuleOrderRootFirst(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "zz.cpp", "app/main.cpp", "lib/foo.cpp")

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"", "app", "lib"}, info.ModuleOrder)
}

func TestScanner_Idempotent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.cpp", "util.h", "lib/foo.cpp", "lib/foo.h", "inc/types.hpp")

	first, err := New(tmpDir).Scan()
	require.NoError(t, err)
	second, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.Equal(t, first.ModuleOrder, second.ModuleOrder)
	assert.Equal(t, first.Sources, second.Sources)
	assert.Equal(t, first.Headers, second.Headers)
	assert.Equal(t, first.IncludeDirs, second.IncludeDirs)
	require.Equal(t, len(first.Modules), len(second.Modules))
	for dir, mod := range first.Modules {
		assert.Equal(t, mod, second.Modules[dir])
	}
}

func TestScanner_EmptyTree(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "README.md")

	info, err := New(tmpDir).Scan()
	require.NoError(t, err)

	assert.Empty(t, info.Modules)
	assert.Empty(t, info.Sources)
	assert.Empty(t, info.Headers)
}

func TestScanner_ShouldIgnore(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())

	assert.True(t, s.ShouldIgnore(".git"))
	assert.True(t, s.ShouldIgnore("src/.vscode"))
	assert.True(t, s.ShouldIgnore("build"))
	assert.True(t, s.ShouldIgnore("out/CMakeFiles"))
	assert.True(t, s.ShouldIgnore("cmake/toolchain.cmake"))
	assert.True(t, s.ShouldIgnore("CMakeCache.txt"))
	assert.False(t, s.ShouldIgnore("src/main.cpp"))
	assert.False(t, s.ShouldIgnore("lib"))
}
