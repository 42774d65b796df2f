package workspace

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"project-health/src/config"
	"project-health/src/util"
)

// slnProjectLine matches `Project("{type}") = "Name", "rel\path.csproj", "{guid}"`
var slnProjectLine = regexp.MustCompile(`^Project\("\{[^}]+\}"\)\s*=\s*"([^"]+)"\s*,\s*"([^"]+)"`)

// Loader builds a Solution from a path on disk
type Loader struct {
	cfg        config.AnalysisConfig
	exclusions *util.ExclusionMatcher
	parser     Parser
}

// NewLoader creates a new solution loader
func NewLoader(cfg config.AnalysisConfig, exclusions *util.ExclusionMatcher, parser Parser) *Loader {
	return &Loader{cfg: cfg, exclusions: exclusions, parser: parser}
}

// Load accepts a .sln file, a .csproj file, or a directory. A directory with a
// solution file uses the first one (by name); otherwise every project file
// under it becomes a project.
func (l *Loader) Load(target string) (*Solution, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", target, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening solution: %w", err)
	}

	if !info.IsDir() {
		switch strings.ToLower(filepath.Ext(abs)) {
		case ".sln":
			return l.loadSolutionFile(abs)
		case ".csproj":
			return l.loadProjects(filepath.Dir(abs), abs, []string{abs})
		default:
			return nil, fmt.Errorf("unsupported solution file: %s", target)
		}
	}

	slns, err := filepath.Glob(filepath.Join(abs, "*.sln"))
	if err != nil {
		return nil, err
	}
	if len(slns) > 0 {
		sort.Strings(slns)
		util.Debug("Using solution file %s", slns[0])
		return l.loadSolutionFile(slns[0])
	}

	projects, err := l.glob(abs, l.projectPattern())
	if err != nil {
		return nil, fmt.Errorf("finding projects: %w", err)
	}
	return l.loadProjects(abs, abs, projects)
}

func (l *Loader) projectPattern() string {
	if l.cfg.ProjectPattern != "" {
		return l.cfg.ProjectPattern
	}
	return "**/*.csproj"
}

func (l *Loader) sourcePatterns() []string {
	if len(l.cfg.SourcePatterns) > 0 {
		return l.cfg.SourcePatterns
	}
	return []string{"**/*.cs"}
}

// loadSolutionFile keeps the project order of the solution file
func (l *Loader) loadSolutionFile(slnPath string) (*Solution, error) {
	f, err := os.Open(slnPath)
	if err != nil {
		return nil, fmt.Errorf("opening solution: %w", err)
	}
	defer f.Close()

	root := filepath.Dir(slnPath)
	var projectFiles []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := slnProjectLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		rel := strings.ReplaceAll(m[2], `\`, "/")
		if !strings.EqualFold(path.Ext(rel), ".csproj") {
			// solution folders and non-C# projects
			continue
		}
		projectFiles = append(projectFiles, filepath.Join(root, filepath.FromSlash(rel)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading solution: %w", err)
	}

	return l.loadProjects(root, slnPath, projectFiles)
}

func (l *Loader) loadProjects(root, solutionPath string, projectFiles []string) (*Solution, error) {
	name := strings.TrimSuffix(filepath.Base(solutionPath), filepath.Ext(solutionPath))
	solution := &Solution{Name: name, Path: solutionPath, Root: root}

	var projectDirs []string
	for _, pf := range projectFiles {
		projectDirs = append(projectDirs, filepath.Dir(pf))
	}

	for _, pf := range projectFiles {
		projectName := strings.TrimSuffix(filepath.Base(pf), filepath.Ext(pf))
		rel := relSlash(root, pf)

		if l.exclusions != nil && l.exclusions.MatchesProject(projectName, rel) {
			util.Debug("Excluding project %s", projectName)
			continue
		}
		if _, err := os.Stat(pf); err != nil {
			util.Warn("Skipping project %s: %v", projectName, err)
			continue
		}

		docs, err := l.loadDocuments(root, filepath.Dir(pf), projectDirs)
		if err != nil {
			return nil, fmt.Errorf("loading project %s: %w", projectName, err)
		}

		util.Debug("Project %s: %d documents", projectName, len(docs))
		solution.Projects = append(solution.Projects, &Project{
			Name:      projectName,
			Path:      rel,
			Documents: docs,
		})
	}

	return solution, nil
}

func (l *Loader) loadDocuments(root, dir string, projectDirs []string) ([]*Document, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range l.sourcePatterns() {
		matches, err := l.glob(dir, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] || ownedByNestedProject(dir, m, projectDirs) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)

	docs := make([]*Document, 0, len(files))
	for _, file := range files {
		rel := relSlash(root, file)
		if l.exclusions != nil && l.exclusions.MatchesFile(rel) {
			continue
		}
		docs = append(docs, NewDocument(filepath.Base(file), file, rel, l.parser))
	}
	return docs, nil
}

// glob returns absolute paths of regular files under dir matching pattern
func (l *Loader) glob(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	sort.Strings(out)
	return out, nil
}

// ownedByNestedProject reports whether file sits in another project's
// directory below dir
func ownedByNestedProject(dir, file string, projectDirs []string) bool {
	for _, other := range projectDirs {
		if other == dir || !isWithin(dir, other) {
			continue
		}
		if isWithin(other, file) {
			return true
		}
	}
	return false
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	return err == nil && rel != "." && !strings.HasPrefix(rel, "..")
}

func relSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
