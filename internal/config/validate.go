package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidCppStandard indicates an unsupported C++ standard
	ErrInvalidCppStandard = errors.New("invalid C++ standard")

	// ErrInvalidMinVersion indicates a malformed CMake minimum version
	ErrInvalidMinVersion = errors.New("invalid CMake minimum version")

	// ErrInvalidBuildType indicates an unsupported CMake build type
	ErrInvalidBuildType = errors.New("invalid build type")
)

// minVersionPattern accepts dotted numeric CMake versions like "3.10" or
// "3.16.3".
var minVersionPattern = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

// validBuildTypes are the standard CMAKE_BUILD_TYPE values. Empty is allowed
// and leaves the choice to cmake.
var validBuildTypes = map[string]bool{
	"":               true,
	"Debug":          true,
	"Release":        true,
	"RelWithDebInfo": true,
	"MinSizeRel":     true,
}

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if !isSupportedCppStandard(cfg.Project.CppStandard) {
		errs = append(errs, fmt.Errorf("%w: %q (supported: %s)",
			ErrInvalidCppStandard, cfg.Project.CppStandard,
			strings.Join(SupportedCppStandards, ", ")))
	}

	if !minVersionPattern.MatchString(cfg.CMake.MinVersion) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMinVersion, cfg.CMake.MinVersion))
	}

	if !validBuildTypes[cfg.CMake.BuildType] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBuildType, cfg.CMake.BuildType))
	}

	return errors.Join(errs...)
}

func isSupportedCppStandard(standard string) bool {
	for _, s := range SupportedCppStandards {
		if s == standard {
			return true
		}
	}
	return false
}
