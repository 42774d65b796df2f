package model

// DocumentRef identifies a document within a run
type DocumentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// ProjectRef identifies a project within a run
type ProjectRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DocumentComplexityResult is the complexity score of one document
type DocumentComplexityResult struct {
	Document        DocumentRef `json:"document"`
	ComplexityScore int         `json:"complexity_score"`
}

// ProjectComplexityResult holds document complexity results in provider order
type ProjectComplexityResult struct {
	Project   ProjectRef                 `json:"project"`
	Documents []DocumentComplexityResult `json:"documents"`
}

// DocumentMaintainabilityResult is the maintainability index of one document
type DocumentMaintainabilityResult struct {
	Document             DocumentRef `json:"document"`
	MaintainabilityIndex float64     `json:"maintainability_index"`
}

// ProjectMaintainabilityResult holds document maintainability results in provider order
type ProjectMaintainabilityResult struct {
	Project   ProjectRef                      `json:"project"`
	Documents []DocumentMaintainabilityResult `json:"documents"`
}

// DocumentMetrics contains everything computed for a single document
type DocumentMetrics struct {
	Document  DocumentRef `json:"document"`
	Available bool        `json:"available"` // false when no tree could be produced

	// Complexity metrics
	Complexity int `json:"complexity"`

	// Size metrics
	Statements int `json:"statements"`

	// Halstead estimate
	Operators     int     `json:"operators"`
	Operands      int     `json:"operands"`
	Volume        float64 `json:"volume"`
	VolumeDefined bool    `json:"volume_defined"`

	// Composite
	MaintainabilityIndex float64 `json:"maintainability_index"`
	HasMaintainability   bool    `json:"has_maintainability"`

	Error *DocumentError `json:"error,omitempty"`
}

// ProjectMetrics contains the metrics of all documents of a project, in provider order
type ProjectMetrics struct {
	Project   ProjectRef        `json:"project"`
	Documents []DocumentMetrics `json:"documents"`
}

// ComplexityResults returns a complexity result for every document that had a tree
func (p *ProjectMetrics) ComplexityResults() ProjectComplexityResult {
	result := ProjectComplexityResult{Project: p.Project}
	for _, d := range p.Documents {
		if !d.Available {
			continue
		}
		result.Documents = append(result.Documents, DocumentComplexityResult{
			Document:        d.Document,
			ComplexityScore: d.Complexity,
		})
	}
	return result
}

// MaintainabilityResults returns results only for documents with a computed index
func (p *ProjectMetrics) MaintainabilityResults() ProjectMaintainabilityResult {
	result := ProjectMaintainabilityResult{Project: p.Project}
	for _, d := range p.Documents {
		if !d.HasMaintainability {
			continue
		}
		result.Documents = append(result.Documents, DocumentMaintainabilityResult{
			Document:             d.Document,
			MaintainabilityIndex: d.MaintainabilityIndex,
		})
	}
	return result
}

// Omitted returns the documents that had no tree. Documents dropped because
// of an error are reported through Errors instead.
func (p *ProjectMetrics) Omitted() []DocumentRef {
	var omitted []DocumentRef
	for _, d := range p.Documents {
		if !d.Available && d.Error == nil {
			omitted = append(omitted, d.Document)
		}
	}
	return omitted
}

// Errors returns the document-scoped errors raised while computing metrics
func (p *ProjectMetrics) Errors() []DocumentError {
	var errs []DocumentError
	for _, d := range p.Documents {
		if d.Error != nil {
			errs = append(errs, *d.Error)
		}
	}
	return errs
}
