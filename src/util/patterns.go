package util

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"project-health/src/config"
)

// ExclusionMatcher matches documents and projects against exclusion patterns.
// Paths are compared in slash form, relative to the solution root.
type ExclusionMatcher struct {
	filePatterns    []string
	files           map[string]bool
	projectPatterns []string
}

// NewExclusionMatcher creates a new exclusion matcher from config. Invalid
// patterns are dropped with a warning.
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	m := &ExclusionMatcher{
		files: make(map[string]bool, len(cfg.Files)),
	}

	for _, f := range cfg.Files {
		m.files[filepath.ToSlash(f)] = true
	}
	m.filePatterns = validPatterns(cfg.FilePatterns)
	m.projectPatterns = validPatterns(cfg.ProjectPatterns)

	return m
}

func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			Warn("Ignoring invalid exclusion pattern: %s", p)
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

// MatchesFile checks if a document should be excluded
func (m *ExclusionMatcher) MatchesFile(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	if m.files[relPath] {
		return true
	}
	return MatchAny(m.filePatterns, relPath)
}

// MatchesProject checks if a project (by name or relative path) should be excluded
func (m *ExclusionMatcher) MatchesProject(name, relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	return MatchAny(m.projectPatterns, name) || MatchAny(m.projectPatterns, relPath)
}

// MatchAny reports whether path matches any of the glob patterns
func MatchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
