package depgraph

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mvp-joe/cmakegen/internal/scanner"
)

// includePattern matches the argument of an #include directive, quoted or
// angle-bracketed. It only captures the include target string; whether the
// target exists is resolved separately.
var includePattern = regexp.MustCompile(`#\s*include\s*[<"]([^>"]+)[>"]`)

// ProgressReporter reports progress during dependency analysis.
type ProgressReporter interface {
	OnAnalysisStart(totalFiles int)
	OnFileParsed(processedFiles, totalFiles int, fileName string)
	OnAnalysisComplete(edgeCount int, duration time.Duration)
}

// Analyzer extracts include directives from source files and resolves them to
// the source files that implement the included headers.
type Analyzer struct {
	rootDir  string
	progress ProgressReporter
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithProgress configures progress reporting.
func WithProgress(progress ProgressReporter) Option {
	return func(a *Analyzer) {
		a.progress = progress
	}
}

// NewAnalyzer creates an analyzer for files under the given project root.
func NewAnalyzer(rootDir string, opts ...Option) *Analyzer {
	a := &Analyzer{rootDir: rootDir}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ParseIncludes reads one source file line by line and returns the include
// targets it names, in file order. A file that cannot be opened or decoded
// contributes zero includes; analysis never fails on a single bad file.
func (a *Analyzer) ParseIncludes(relPath string) []string {
	includes := []string{}

	f, err := os.Open(filepath.Join(a.rootDir, filepath.FromSlash(relPath)))
	if err != nil {
		return includes
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if m := includePattern.FindStringSubmatch(sc.Text()); m != nil {
			includes = append(includes, m[1])
		}
	}
	// Scanner errors (binary junk, over-long lines) degrade to a partial
	// include list, same as an unreadable file.
	return includes
}

// MapHeadersToSources builds the header ownership table: for every header
// name that some source file's stem matches (stem + header extension), the
// list of owning source files. Keys are bare filenames, not paths, which
// approximates how `#include "name.h"` resolves without full include-path
// resolution. Two headers with the same basename in different directories are
// therefore conflated on purpose.
func MapHeadersToSources(sourceFiles, headerFiles []string) map[string][]string {
	// Bare header name -> all header paths sharing it across the tree.
	headerMap := make(map[string][]string)
	for _, header := range headerFiles {
		name := path.Base(header)
		headerMap[name] = append(headerMap[name], header)
	}

	headerToSource := make(map[string][]string)
	for _, source := range sourceFiles {
		base := path.Base(source)
		stem := strings.TrimSuffix(base, path.Ext(base))

		for _, ext := range scanner.HeaderExtensions() {
			headerName := stem + ext
			if len(headerMap[headerName]) > 0 {
				headerToSource[headerName] = append(headerToSource[headerName], source)
			}
		}
	}

	return headerToSource
}

// DirectDependencies computes the direct dependency edges for every source
// file. Every source has an entry, possibly empty, never absent. Edge lists
// are duplicate-free, never self-referential, and sorted.
func (a *Analyzer) DirectDependencies(sourceFiles, headerFiles []string) map[string][]string {
	startTime := time.Now()
	headerToSource := MapHeadersToSources(sourceFiles, headerFiles)

	if a.progress != nil {
		a.progress.OnAnalysisStart(len(sourceFiles))
	}

	edgeCount := 0
	deps := make(map[string][]string, len(sourceFiles))
	for i, source := range sourceFiles {
		deps[source] = []string{}
		seen := make(map[string]bool)

		for _, include := range a.ParseIncludes(source) {
			owners := headerToSource[path.Base(include)]
			for _, owner := range owners {
				if owner == source || seen[owner] {
					continue
				}
				seen[owner] = true
				deps[source] = append(deps[source], owner)
				edgeCount++
			}
		}
		sort.Strings(deps[source])

		if a.progress != nil {
			a.progress.OnFileParsed(i+1, len(sourceFiles), path.Base(source))
		}
	}

	if a.progress != nil {
		a.progress.OnAnalysisComplete(edgeCount, time.Since(startTime))
	}

	return deps
}

// Analyze runs the full analysis and returns the dependency graph.
func (a *Analyzer) Analyze(sourceFiles, headerFiles []string) (*Graph, error) {
	return NewGraph(a.DirectDependencies(sourceFiles, headerFiles))
}
