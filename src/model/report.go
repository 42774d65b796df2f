package model

import "time"

// ComplexityTier is the severity bucket of a complexity score
type ComplexityTier string

const (
	ComplexityLow      ComplexityTier = "Low"
	ComplexityModerate ComplexityTier = "Moderate"
	ComplexityHigh     ComplexityTier = "High"
)

// MaintainabilityTier is the severity bucket of a maintainability index
type MaintainabilityTier string

const (
	MaintainabilityRed    MaintainabilityTier = "Red"
	MaintainabilityYellow MaintainabilityTier = "Yellow"
	MaintainabilityGreen  MaintainabilityTier = "Green"
)

// ErrorReason categorizes a document-scoped failure
type ErrorReason string

const (
	ReasonCancelled        ErrorReason = "cancelled"
	ReasonDegenerateVolume ErrorReason = "degenerate_volume"
	ReasonNegativeIndex    ErrorReason = "negative_index"
)

// DocumentError is a failure contained at the document boundary
type DocumentError struct {
	Document string      `json:"document"`
	Path     string      `json:"path,omitempty"`
	Check    string      `json:"check"`
	Reason   ErrorReason `json:"reason"`
	Message  string      `json:"message"`
}

// Report is the complete analysis output
type Report struct {
	Solution    string          `json:"solution"`
	GeneratedAt *time.Time      `json:"generated_at,omitempty"`
	Summary     ReportSummary   `json:"summary"`
	Projects    []ProjectReport `json:"projects"`
}

// ReportSummary contains solution-wide counts
type ReportSummary struct {
	ProjectCount          int                         `json:"project_count"`
	DocumentCount         int                         `json:"document_count"`
	OmittedCount          int                         `json:"omitted_count"`
	ErrorCount            int                         `json:"error_count"`
	ByComplexityTier      map[ComplexityTier]int      `json:"by_complexity_tier"`
	ByMaintainabilityTier map[MaintainabilityTier]int `json:"by_maintainability_tier"`
}

// ProjectReport is the per-project record
type ProjectReport struct {
	Project         string                  `json:"project"`
	Path            string                  `json:"path"`
	DocumentCount   int                     `json:"document_count"`
	Omitted         []string                `json:"omitted,omitempty"`
	Complexity      *ComplexitySummary      `json:"complexity,omitempty"`
	Maintainability *MaintainabilitySummary `json:"maintainability,omitempty"`
	Errors          []DocumentError         `json:"errors,omitempty"`
}

// ComplexitySummary aggregates the complexity results of one project
type ComplexitySummary struct {
	DocumentCount int                    `json:"document_count"`
	HasData       bool                   `json:"has_data"`
	Total         int                    `json:"total"`
	Average       float64                `json:"average"`
	Counts        map[ComplexityTier]int `json:"counts"`

	// Only the risk-bearing tiers, Moderate then High, when non-empty
	Tiers []ComplexityTierSummary `json:"tiers,omitempty"`
}

// ComplexityTierSummary lists the documents of one risk-bearing tier
type ComplexityTierSummary struct {
	Tier      ComplexityTier       `json:"tier"`
	Count     int                  `json:"count"`
	Average   float64              `json:"average"`
	Documents []ComplexityDocument `json:"documents"`
}

// ComplexityDocument is a listed document with its score
type ComplexityDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Score int    `json:"score"`
}

// MaintainabilitySummary aggregates the maintainability results of one project
type MaintainabilitySummary struct {
	DocumentCount  int                         `json:"document_count"`
	HasData        bool                        `json:"has_data"`
	Average        float64                     `json:"average"`
	AverageDisplay string                      `json:"average_display,omitempty"`
	Counts         map[MaintainabilityTier]int `json:"counts"`

	// Only the risk-bearing tiers, Yellow then Red, when non-empty
	Tiers []MaintainabilityTierSummary `json:"tiers,omitempty"`
}

// MaintainabilityTierSummary lists the documents of one risk-bearing tier
type MaintainabilityTierSummary struct {
	Tier           MaintainabilityTier       `json:"tier"`
	Count          int                       `json:"count"`
	Average        float64                   `json:"average"`
	AverageDisplay string                    `json:"average_display,omitempty"`
	Documents      []MaintainabilityDocument `json:"documents"`
}

// MaintainabilityDocument is a listed document with its index. Display is
// empty when the index cannot be rendered as a tier string.
type MaintainabilityDocument struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Path    string  `json:"path"`
	Index   float64 `json:"index"`
	Display string  `json:"display,omitempty"`
}
