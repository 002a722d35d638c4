// Package render turns the abstract build plan into CMakeLists.txt text. All
// structural decisions (names, kinds, ordering, link lists) are made by the
// planner; this package only formats.
package render

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/cmakegen/internal/config"
	"github.com/mvp-joe/cmakegen/internal/planner"
)

// Renderer renders build-description files from a plan and settings. Settings
// only affect the standard/version text, never the plan structure.
type Renderer struct {
	cfg config.Config
}

// New creates a renderer with the given settings.
func New(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// RootFile renders the root CMakeLists.txt: project preamble, language
// standard block, global include directories, subdirectory list and the
// executable target.
func (r *Renderer) RootFile(plan *planner.Plan) string {
	onOff := func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	}

	lines := []string{
		fmt.Sprintf("cmake_minimum_required(VERSION %s)", r.cfg.CMake.MinVersion),
		fmt.Sprintf("project(%s C CXX)", plan.ProjectName),
		"",
		"# Set C++ standard",
		fmt.Sprintf("set(CMAKE_CXX_STANDARD %s)", r.cfg.Project.CppStandard),
		fmt.Sprintf("set(CMAKE_CXX_STANDARD_REQUIRED %s)", onOff(r.cfg.Project.CXXRequired)),
		fmt.Sprintf("set(CMAKE_CXX_EXTENSIONS %s)", onOff(r.cfg.Project.CXXExtensions)),
	}

	if len(plan.IncludeDirs) > 0 {
		lines = append(lines, "", "# Include directories", "include_directories(")
		for _, dir := range plan.IncludeDirs {
			lines = append(lines, "    "+dir)
		}
		lines = append(lines, ")")
	}

	if len(plan.Subdirectories) > 0 {
		lines = append(lines, "", "# Add subdirectories")
		for _, dir := range plan.Subdirectories {
			lines = append(lines, fmt.Sprintf("add_subdirectory(%s)", dir))
		}
	}

	if exe := plan.Executable(); exe != nil {
		lines = append(lines, "", "# Main executable")
		lines = append(lines, r.renderExecutable(*exe)...)
	}

	return strings.Join(lines, "\n") + "\n"
}

// ModuleFile renders the CMakeLists.txt for one non-root module target.
func (r *Renderer) ModuleFile(target planner.TargetPlan) string {
	if target.Kind == planner.KindInterface {
		return r.renderInterface(target)
	}
	return strings.Join(renderCompiledTarget(target.Name, target, "add_library"), "\n") + "\n"
}

// renderExecutable renders the executable section of the root file. The three
// shapes mirror the three main-module cases the planner distinguishes.
func (r *Renderer) renderExecutable(target planner.TargetPlan) []string {
	switch {
	case target.Dir == "":
		// Root module executable: full sources/headers block. The target is
		// addressed through the PROJECT_NAME variable.
		lines := renderCompiledTarget("${PROJECT_NAME}", target, "add_executable")
		if len(target.LinkLibraries) > 0 {
			lines = append(lines, fmt.Sprintf("target_link_libraries(${PROJECT_NAME} %s)",
				strings.Join(target.LinkLibraries, " ")))
		}
		return lines

	case !target.FallbackMain:
		// Non-root main module: the executable pulls that module's sources in
		// directly by root-relative path.
		lines := []string{fmt.Sprintf("add_executable(%s)", target.Name)}
		for _, source := range target.Sources {
			lines = append(lines, fmt.Sprintf("target_sources(%s PRIVATE %s)", target.Name, source))
		}
		if len(target.LinkLibraries) > 0 {
			lines = append(lines, fmt.Sprintf("target_link_libraries(%s %s)",
				target.Name, strings.Join(target.LinkLibraries, " ")))
		}
		return lines

	default:
		// Fallback for a main module without sources.
		lines := []string{fmt.Sprintf("add_executable(%s %s)", target.Name, target.Sources[0])}
		if len(target.LinkLibraries) > 0 {
			lines = append(lines, fmt.Sprintf("target_link_libraries(%s %s)",
				target.Name, strings.Join(target.LinkLibraries, " ")))
		}
		return lines
	}
}

// renderCompiledTarget renders the set(<name>_SOURCES/_HEADERS), source_group
// and add_* lines shared by library targets and the root executable.
func renderCompiledTarget(name string, target planner.TargetPlan, addCommand string) []string {
	lines := []string{}

	if len(target.Sources) == 0 {
		return lines
	}

	lines = append(lines, fmt.Sprintf("set(%s_SOURCES", name))
	for _, source := range target.Sources {
		lines = append(lines, "    "+source)
	}
	lines = append(lines, ")")

	if len(target.Headers) > 0 {
		lines = append(lines, "", fmt.Sprintf("set(%s_HEADERS", name))
		for _, header := range target.Headers {
			lines = append(lines, "    "+header)
		}
		lines = append(lines, ")")
		lines = append(lines, "",
			fmt.Sprintf("source_group(\"Header Files\" FILES ${%s_HEADERS})", name),
			fmt.Sprintf("source_group(\"Source Files\" FILES ${%s_SOURCES})", name))
	}

	lines = append(lines, "", fmt.Sprintf("%s(%s ${%s_SOURCES})", addCommand, name, name))
	return lines
}

// renderInterface renders a header-only module as an INTERFACE library
// exposing its headers.
func (r *Renderer) renderInterface(target planner.TargetPlan) string {
	var b strings.Builder
	b.WriteString("# Header-only library\n")
	fmt.Fprintf(&b, "add_library(%s INTERFACE)\n", target.Name)

	if len(target.Headers) > 0 {
		fmt.Fprintf(&b, "target_sources(%s INTERFACE\n", target.Name)
		for _, header := range target.Headers {
			fmt.Fprintf(&b, "    ${CMAKE_CURRENT_SOURCE_DIR}/%s\n", header)
		}
		b.WriteString(")\n")
	}

	return b.String()
}
