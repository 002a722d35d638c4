package planner

// TargetKind is the kind of buildable target a module becomes.
type TargetKind string

const (
	// KindLibrary is a compiled static/shared library target.
	KindLibrary TargetKind = "library"
	// KindExecutable is the single program entry-point target.
	KindExecutable TargetKind = "executable"
	// KindInterface is a header-only library target with no compiled sources.
	KindInterface TargetKind = "interface"
)

// TargetPlan is the abstract description of one buildable target, resolved
// far enough that the renderer makes no structural decisions: names, kinds,
// sorted relative paths and link lists are final.
type TargetPlan struct {
	// Name is the target name: the module directory's base name for
	// libraries, the project name for the executable.
	Name string

	// Kind is library, executable or interface.
	Kind TargetKind

	// Dir is the module directory relative to the project root. Empty for
	// the root module. The executable target is always rendered in the root
	// build file regardless of Dir.
	Dir string

	// Sources and Headers are sorted file paths. For library and interface
	// targets they are relative to Dir; for the executable they are relative
	// to the project root, where it is defined.
	Sources []string
	Headers []string

	// LinkLibraries are the target names this target links against, sorted.
	// Only the executable links against anything.
	LinkLibraries []string

	// FallbackMain marks an executable synthesized for a main module with no
	// sources; its single source is a conventional default file name rather
	// than a scanned file.
	FallbackMain bool
}

// Plan is the full ordered build description for one project.
type Plan struct {
	// ProjectName names the project and the executable target.
	ProjectName string

	// Targets holds the executable (if any) first, then library and
	// interface targets sorted by module directory.
	Targets []TargetPlan

	// IncludeDirs is the global include-path list, sorted, with the root
	// directory rendered as ".".
	IncludeDirs []string

	// Subdirectories lists non-root module directories, sorted, each of
	// which receives its own build file.
	Subdirectories []string

	// MainModule is the directory of the detected main module. Meaningful
	// only when HasExecutable is true.
	MainModule string

	// HasExecutable is false when no module has any source file.
	HasExecutable bool
}

// Executable returns the executable target plan, or nil if none was planned.
func (p *Plan) Executable() *TargetPlan {
	for i := range p.Targets {
		if p.Targets[i].Kind == KindExecutable {
			return &p.Targets[i]
		}
	}
	return nil
}

// ModuleTargets returns the non-executable targets in emission order.
func (p *Plan) ModuleTargets() []TargetPlan {
	targets := []TargetPlan{}
	for _, t := range p.Targets {
		if t.Kind != KindExecutable {
			targets = append(targets, t)
		}
	}
	return targets
}
