// Package workspace discovers the projects and documents of a solution and
// hands out their syntax trees.
package workspace

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"project-health/src/model"
	"project-health/src/syntax"
)

// Parser produces the syntax tree of a document on disk
type Parser interface {
	Parse(ctx context.Context, path string) (syntax.Tree, error)
}

// Solution is an ordered set of projects
type Solution struct {
	Name     string
	Path     string
	Root     string
	Projects []*Project
}

// DocumentCount returns the number of documents across all projects
func (s *Solution) DocumentCount() int {
	total := 0
	for _, p := range s.Projects {
		total += len(p.Documents)
	}
	return total
}

// Project is an ordered set of documents
type Project struct {
	Name      string
	Path      string
	Documents []*Document
}

// Ref returns the project identity used in results
func (p *Project) Ref() model.ProjectRef {
	return model.ProjectRef{Name: p.Name, Path: p.Path}
}

// Document is a single source file
type Document struct {
	Name    string
	Path    string
	RelPath string
	parser  Parser
}

// NewDocument creates a document parsed by parser on demand
func NewDocument(name, path, relPath string, parser Parser) *Document {
	return &Document{Name: name, Path: path, RelPath: relPath, parser: parser}
}

// ID returns a stable identifier derived from the solution-relative path
func (d *Document) ID() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(d.RelPath))
}

// Ref returns the document identity used in results
func (d *Document) Ref() model.DocumentRef {
	return model.DocumentRef{ID: d.ID(), Name: d.Name, Path: d.RelPath}
}

// Open parses the document. The caller must Close the tree.
func (d *Document) Open(ctx context.Context) (syntax.Tree, error) {
	if d.parser == nil {
		return nil, fmt.Errorf("%w: no parser for %s", syntax.ErrTreeUnavailable, d.RelPath)
	}
	return d.parser.Parse(ctx, d.Path)
}
