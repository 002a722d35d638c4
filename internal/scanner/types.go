package scanner

// FileKind classifies a scanned file by its extension.
type FileKind int

const (
	// FileSource is a compiled translation unit (.c, .cpp, .cc, .cxx, .c++).
	FileSource FileKind = iota
	// FileHeader is an include file (.h, .hpp, .hh, .hxx, .h++).
	FileHeader
)

// FileRecord is a classified file found during the scan. Path is relative to
// the project root and always uses forward slashes.
type FileRecord struct {
	Path string
	Kind FileKind
}

// Module groups the files located directly in one directory (non-recursive).
// Path is the root-relative directory path; the empty string denotes the
// project root itself.
type Module struct {
	Path    string
	Sources []string
	Headers []string
}

// HasFiles reports whether the module contains any classified file. A module
// only exists in the module map if this is true.
func (m *Module) HasFiles() bool {
	return len(m.Sources) > 0 || len(m.Headers) > 0
}

// ProjectInfo is the immutable result of one scan pass.
type ProjectInfo struct {
	// Root is the absolute path the scan started from.
	Root string

	// Modules maps root-relative directory paths to their modules.
	Modules map[string]*Module

	// ModuleOrder lists module keys in walk order (root first, then lexical).
	// Downstream consumers that need a documented tie-break iterate in this
	// order rather than over the map.
	ModuleOrder []string

	// Sources and Headers are the flat, root-relative file lists across all
	// modules, in walk order.
	Sources []string
	Headers []string

	// IncludeDirs is the set of directories containing at least one header,
	// candidates for include paths. The root directory appears as "".
	IncludeDirs map[string]bool
}

// Module returns the module for a root-relative directory path, or nil.
func (p *ProjectInfo) Module(dir string) *Module {
	return p.Modules[dir]
}
