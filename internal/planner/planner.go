package planner

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mvp-joe/cmakegen/internal/scanner"
)

// mainPattern matches a program entry point. A purely textual probe: no
// preprocessor or semantic analysis, matching the tool's best-effort contract.
var mainPattern = regexp.MustCompile(`int\s+main\s*\(`)

// defaultMainSource is the conventional source file the executable falls back
// to when the main module has no sources of its own.
const defaultMainSource = "main.cpp"

// Planner turns a scanned module map into an ordered, abstract build plan.
type Planner struct {
	rootDir     string
	projectName string
}

// New creates a planner. projectName names the project and its executable;
// callers default it to the root directory's base name.
func New(rootDir, projectName string) *Planner {
	if projectName == "" {
		projectName = filepath.Base(rootDir)
	}
	return &Planner{rootDir: rootDir, projectName: projectName}
}

// FindMainModule returns the directory of the module whose sources contain a
// program entry point. Modules are probed in the fixed module order, so a tree
// with several main functions resolves to the first one deterministically.
// Falls back to the first module with any source file. Returns false when no
// module has sources at all.
func (p *Planner) FindMainModule(info *scanner.ProjectInfo) (string, bool) {
	for _, dir := range info.ModuleOrder {
		for _, source := range info.Modules[dir].Sources {
			content, err := os.ReadFile(filepath.Join(p.rootDir, filepath.FromSlash(source)))
			if err != nil {
				continue
			}
			if mainPattern.Match(content) {
				return dir, true
			}
		}
	}

	for _, dir := range info.ModuleOrder {
		if len(info.Modules[dir].Sources) > 0 {
			return dir, true
		}
	}

	return "", false
}

// IncludeDirs computes the global include-path list: every module directory
// (each holds at least one source or header), plus the parent directory of
// every non-root module so includes written relative to a package root one
// level up resolve too. Sorted, with the root directory rendered as ".".
func IncludeDirs(info *scanner.ProjectInfo) []string {
	dirs := make(map[string]bool)

	for _, mod := range info.Modules {
		if !mod.HasFiles() {
			continue
		}
		if mod.Path == "" {
			dirs["."] = true
			continue
		}
		dirs[mod.Path] = true

		if parent := path.Dir(mod.Path); parent != "." {
			dirs[parent] = true
		}
	}

	result := make([]string, 0, len(dirs))
	for dir := range dirs {
		result = append(result, dir)
	}
	sort.Strings(result)
	return result
}

// Plan produces the ordered target list and include-path set for a scanned
// project. A project without any source file yields no executable; a project
// without any classified file yields an empty plan.
func (p *Planner) Plan(info *scanner.ProjectInfo) *Plan {
	plan := &Plan{
		ProjectName: p.projectName,
		Targets:     []TargetPlan{},
		IncludeDirs: IncludeDirs(info),
	}

	for _, dir := range info.ModuleOrder {
		if dir != "" {
			plan.Subdirectories = append(plan.Subdirectories, dir)
		}
	}
	sort.Strings(plan.Subdirectories)

	mainModule, hasMain := p.FindMainModule(info)
	plan.MainModule = mainModule
	plan.HasExecutable = hasMain

	if hasMain {
		plan.Targets = append(plan.Targets, p.planExecutable(info, mainModule))
	}

	for _, dir := range plan.Subdirectories {
		plan.Targets = append(plan.Targets, planModuleTarget(info.Modules[dir]))
	}

	return plan
}

// planExecutable synthesizes the single executable target for the detected
// main module.
func (p *Planner) planExecutable(info *scanner.ProjectInfo, mainModule string) TargetPlan {
	target := TargetPlan{
		Name: p.projectName,
		Kind: KindExecutable,
		Dir:  mainModule,
	}

	mod := info.Modules[mainModule]

	switch {
	case mainModule == "":
		// Root module is the executable: built directly from the root's own
		// files, linking every other module.
		target.Sources = sortedCopy(mod.Sources)
		target.Headers = sortedCopy(mod.Headers)
		target.LinkLibraries = linkableModules(info, func(m *scanner.Module) bool {
			return m.Path != "" && m.HasFiles()
		})

	case len(mod.Sources) > 0:
		// Non-root main module: its sources feed the executable directly
		// rather than being reused as a library, and the module is excluded
		// from its own link list.
		target.Sources = sortedCopy(mod.Sources)
		target.LinkLibraries = linkableModules(info, func(m *scanner.Module) bool {
			return m.Path != "" && m.Path != mainModule && m.HasFiles()
		})

	default:
		// Headers-only main module: fall back to the conventional default
		// source and link everything that compiles.
		target.Sources = []string{defaultMainSource}
		target.FallbackMain = true
		target.LinkLibraries = linkableModules(info, func(m *scanner.Module) bool {
			return m.Path != "" && len(m.Sources) > 0
		})
	}

	return target
}

// planModuleTarget plans a library or interface target for one non-root
// module, with file paths rewritten relative to the module's own directory.
func planModuleTarget(mod *scanner.Module) TargetPlan {
	target := TargetPlan{
		Name:    path.Base(mod.Path),
		Dir:     mod.Path,
		Sources: relativeToDir(mod.Sources, mod.Path),
		Headers: relativeToDir(mod.Headers, mod.Path),
	}
	if len(mod.Sources) > 0 {
		target.Kind = KindLibrary
	} else {
		target.Kind = KindInterface
	}
	return target
}

// linkableModules returns the base names of modules accepted by keep, sorted.
// Only non-root modules ever become named library targets, so link lists only
// reference them.
func linkableModules(info *scanner.ProjectInfo, keep func(*scanner.Module) bool) []string {
	names := []string{}
	for _, dir := range info.ModuleOrder {
		if mod := info.Modules[dir]; keep(mod) {
			names = append(names, path.Base(mod.Path))
		}
	}
	sort.Strings(names)
	return names
}

func relativeToDir(files []string, dir string) []string {
	rel := make([]string, 0, len(files))
	for _, f := range files {
		if dir != "" {
			f = strings.TrimPrefix(f, dir+"/")
		}
		rel = append(rel, f)
	}
	sort.Strings(rel)
	return rel
}

func sortedCopy(files []string) []string {
	c := append([]string{}, files...)
	sort.Strings(c)
	return c
}
