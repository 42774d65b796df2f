// Package severity maps metric values onto tiers and renders them for reports.
package severity

import (
	"errors"
	"fmt"
	"math"

	"project-health/src/config"
	"project-health/src/model"
)

// ErrNegativeIndex is returned when a maintainability index cannot be rendered
var ErrNegativeIndex = errors.New("maintainability index is negative")

// Classifier holds inclusive tier boundaries
type Classifier struct {
	complexityLowMax         int
	complexityModerateMax    int
	maintainabilityRedMax    float64
	maintainabilityYellowMax float64
}

// NewClassifier creates a classifier from configured boundaries
func NewClassifier(cfg config.SeverityConfig) *Classifier {
	return &Classifier{
		complexityLowMax:         cfg.ComplexityLowMax,
		complexityModerateMax:    cfg.ComplexityModerateMax,
		maintainabilityRedMax:    cfg.MaintainabilityRedMax,
		maintainabilityYellowMax: cfg.MaintainabilityYellowMax,
	}
}

// Complexity returns Low for scores up to the low bound, Moderate up to the
// moderate bound, High above it
func (c *Classifier) Complexity(score int) model.ComplexityTier {
	switch {
	case score <= c.complexityLowMax:
		return model.ComplexityLow
	case score <= c.complexityModerateMax:
		return model.ComplexityModerate
	default:
		return model.ComplexityHigh
	}
}

// Maintainability returns Red up to the red bound, Yellow up to the yellow
// bound, Green above it. Negative values are still classified.
func (c *Classifier) Maintainability(index float64) model.MaintainabilityTier {
	switch {
	case index <= c.maintainabilityRedMax:
		return model.MaintainabilityRed
	case index <= c.maintainabilityYellowMax:
		return model.MaintainabilityYellow
	default:
		return model.MaintainabilityGreen
	}
}

// FormatMaintainability renders "<Tier> (x.xx)"
func (c *Classifier) FormatMaintainability(index float64) (string, error) {
	if math.IsNaN(index) || index < 0 {
		return "", fmt.Errorf("%w: %.2f", ErrNegativeIndex, index)
	}
	return fmt.Sprintf("%s (%.2f)", c.Maintainability(index), index), nil
}

// FormatComplexity renders "<Tier> (n)"
func (c *Classifier) FormatComplexity(score int) string {
	return fmt.Sprintf("%s (%d)", c.Complexity(score), score)
}
