package metrics

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoStatements marks a document without executable statements; it is skipped, not failed
	ErrNoStatements = errors.New("no executable statements")

	// ErrDegenerateVolume marks a volume that ln() cannot take
	ErrDegenerateVolume = errors.New("degenerate halstead volume")
)

// MaintainabilityIndex computes
//
//	171 - 5.2*ln(volume) - 0.23*complexity - 16.2*ln(statements)
//
// The result is not clamped and may be negative.
func MaintainabilityIndex(complexity, statements int, volume float64) (float64, error) {
	if statements <= 0 {
		return 0, ErrNoStatements
	}
	if math.IsNaN(volume) || math.IsInf(volume, 0) || volume <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateVolume, volume)
	}

	mi := 171 - 5.2*math.Log(volume) - 0.23*float64(complexity) - 16.2*math.Log(float64(statements))
	return mi, nil
}
