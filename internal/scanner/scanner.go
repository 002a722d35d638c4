package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// sourceExtensions and headerExtensions are the fixed classification sets.
// Lookup is case-insensitive.
var sourceExtensions = map[string]bool{
	".c": true, ".cpp": true, ".cc": true, ".cxx": true, ".c++": true,
}

var headerExtensions = map[string]bool{
	".h": true, ".hpp": true, ".hh": true, ".hxx": true, ".h++": true,
}

// HeaderExtensions returns the header extension probe order used when mapping
// source stems to header names. The order is fixed so results are stable.
func HeaderExtensions() []string {
	return []string{".h", ".hpp", ".hh", ".hxx", ".h++"}
}

// IsSourceExt reports whether ext (with leading dot) is a source extension.
func IsSourceExt(ext string) bool {
	return sourceExtensions[strings.ToLower(ext)]
}

// IsHeaderExt reports whether ext (with leading dot) is a header extension.
func IsHeaderExt(ext string) bool {
	return headerExtensions[strings.ToLower(ext)]
}

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// defaultIgnorePatterns skip version-control metadata, IDE metadata, build
// output and CMake-generated state. Patterns are matched against the
// root-relative slash path of each directory and file; a matching directory
// short-circuits its whole subtree. Evaluated top-down, first match wins.
var defaultIgnorePatterns = []string{
	"*.git*",
	"*.vs*",
	"*.vscode*",
	"*build*",
	"*CMakeFiles*",
	"*.cmake",
	"*CMakeCache.txt",
}

// Scanner walks a C/C++ project tree and groups classified files into modules.
type Scanner struct {
	rootDir        string
	ignorePatterns []compiledPattern
}

// New creates a scanner for the given project root.
func New(rootDir string) *Scanner {
	s := &Scanner{rootDir: rootDir}
	for _, pattern := range defaultIgnorePatterns {
		// No separator argument: '*' spans path segments, so "*build*"
		// matches "build", "cmake-build-debug" and "out/build/x".
		s.ignorePatterns = append(s.ignorePatterns, compiledPattern{
			pattern: pattern,
			glob:    glob.MustCompile(pattern),
		})
	}
	return s
}

// ShouldIgnore reports whether a root-relative slash path matches any ignore
// rule.
func (s *Scanner) ShouldIgnore(relPath string) bool {
	for _, cp := range s.ignorePatterns {
		if cp.glob.Match(relPath) {
			return true
		}
	}
	return false
}

// Scan walks the project tree once and returns the resulting ProjectInfo.
// Unreadable directories and files are skipped silently; the scan itself never
// fails on a single bad entry. The output is deterministic regardless of
// filesystem iteration order because the walk visits entries lexically.
func (s *Scanner) Scan() (*ProjectInfo, error) {
	info := &ProjectInfo{
		Root:        s.rootDir,
		Modules:     make(map[string]*Module),
		Sources:     []string{},
		Headers:     []string{},
		IncludeDirs: make(map[string]bool),
	}

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Partial results are acceptable; drop the unreadable entry.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(s.rootDir, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && s.ShouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.ShouldIgnore(relPath) {
			return nil
		}

		ext := filepath.Ext(d.Name())
		var kind FileKind
		switch {
		case IsSourceExt(ext):
			kind = FileSource
		case IsHeaderExt(ext):
			kind = FileHeader
		default:
			return nil
		}

		dir := filepath.ToSlash(filepath.Dir(relPath))
		if dir == "." {
			dir = ""
		}

		mod, ok := info.Modules[dir]
		if !ok {
			mod = &Module{Path: dir}
			info.Modules[dir] = mod
		}

		if kind == FileSource {
			mod.Sources = append(mod.Sources, relPath)
			info.Sources = append(info.Sources, relPath)
		} else {
			mod.Headers = append(mod.Headers, relPath)
			info.Headers = append(info.Headers, relPath)
			info.IncludeDirs[dir] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fixed iteration order: the root module (empty key) first, then lexical.
	// The empty string sorts before every other key, so a plain sort does it.
	info.ModuleOrder = make([]string, 0, len(info.Modules))
	for dir := range info.Modules {
		info.ModuleOrder = append(info.ModuleOrder, dir)
	}
	sort.Strings(info.ModuleOrder)

	return info, nil
}
