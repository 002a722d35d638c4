package depgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Analyzer:
// - ParseIncludes extracts quoted and angle-bracketed targets, any spacing
// - ParseIncludes ignores non-include lines
// - Unreadable files contribute zero includes
// - MapHeadersToSources matches source stems to header names
// - Headers without a matching source stem are not owned
// - Two headers sharing a basename in different directories are both recorded
// - DirectDependencies yields an explicit empty set for sources without includes
// - DirectDependencies excludes self-edges and duplicates, sorted output
// - Includes written with a path resolve by bare filename

// writeFile creates one relative file with content under root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestAnalyzer_ParseIncludes(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.cpp", `// entry point
#include "util.h"
# include <vector>
#include<other.hpp>
#  include   "deep/nested.h"
int main() { return 0; }
`)

	includes := NewAnalyzer(tmpDir).ParseIncludes("main.cpp")
	assert.Equal(t, []string{"util.h", "vector", "other.hpp", "deep/nested.h"}, includes)
}

func TestAnalyzer_ParseIncludes_NoDirectives(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "plain.cpp", "int x = 42;\n")

	includes := NewAnalyzer(tmpDir).ParseIncludes("plain.cpp")
	assert.NotNil(t, includes)
	assert.Empty(t, includes)
}

func TestAnalyzer_ParseIncludes_UnreadableFile(t *testing.T) {
	t.Parallel()

	includes := NewAnalyzer(t.TempDir()).ParseIncludes("missing.cpp")
	assert.NotNil(t, includes)
	assert.Empty(t, includes)
}

func TestMapHeadersToSources_StemMatching(t *testing.T) {
	t.Parallel()

	owners := MapHeadersToSources(
		[]string{"util.cpp", "main.cpp"},
		[]string{"util.h"},
	)

	assert.Equal(t, []string{"util.cpp"}, owners["util.h"])
	assert.NotContains(t, owners, "main.h")
}

func TestMapHeadersToSources_UnownedHeader(t *testing.T) {
	t.Parallel()

	owners := MapHeadersToSources(
		[]string{"main.cpp"},
		[]string{"types.h"},
	)

	assert.Empty(t, owners)
}

func TestMapHeadersToSources_DuplicateBasenames(t *testing.T) {
	t.Parallel()

	// a.h exists in two directories; both x/a.cpp and y/a.cpp share the stem,
	// so both own the bare name "a.h". Path-insensitive on purpose.
	owners := MapHeadersToSources(
		[]string{"x/a.cpp", "y/a.cpp"},
		[]string{"x/a.h", "x/y/a.h"},
	)

	assert.ElementsMatch(t, []string{"x/a.cpp", "y/a.cpp"}, owners["a.h"])
}

func TestAnalyzer_DirectDependencies(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.cpp", `#include "util.h"
#include "foo.h"
#include "foo.h"
#include <cstdio>
int main() { return 0; }
`)
	writeFile(t, tmpDir, "util.cpp", `#include "util.h"
`)
	writeFile(t, tmpDir, "util.h", "")
	writeFile(t, tmpDir, "lib/foo.cpp", `#include "foo.h"
`)
	writeFile(t, tmpDir, "lib/foo.h", "")

	deps := NewAnalyzer(tmpDir).DirectDependencies(
		[]string{"main.cpp", "util.cpp", "lib/foo.cpp"},
		[]string{"util.h", "lib/foo.h"},
	)

	// main.cpp depends on the owners of util.h and foo.h, deduplicated and
	// sorted. System includes resolve to nothing.
	assert.Equal(t, []string{"lib/foo.cpp", "util.cpp"}, deps["main.cpp"])

	// util.cpp includes its own header only: owning source is itself, which
	// never forms a self-edge.
	assert.Equal(t, []string{}, deps["util.cpp"])
	assert.Equal(t, []string{}, deps["lib/foo.cpp"])
}

func TestAnalyzer_DirectDependencies_BareFilenameResolution(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.cpp", `#include "lib/foo.h"
int main() { return 0; }
`)
	writeFile(t, tmpDir, "lib/foo.cpp", "")
	writeFile(t, tmpDir, "lib/foo.h", "")

	deps := NewAnalyzer(tmpDir).DirectDependencies(
		[]string{"main.cpp", "lib/foo.cpp"},
		[]string{"lib/foo.h"},
	)

	// The include names a path; resolution keys on the bare filename.
	assert.Equal(t, []string{"lib/foo.cpp"}, deps["main.cpp"])
}

func TestAnalyzer_DirectDependencies_EverySourceHasEntry(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.cpp", "int a;\n")

	deps := NewAnalyzer(tmpDir).DirectDependencies(
		[]string{"a.cpp", "missing.cpp"},
		nil,
	)

	require.Contains(t, deps, "a.cpp")
	require.Contains(t, deps, "missing.cpp")
	assert.Equal(t, []string{}, deps["missing.cpp"])
}
