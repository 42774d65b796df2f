package metrics

import (
	"errors"
	"math"

	"project-health/src/syntax"
)

// ErrUndefinedVolume is returned when a document has no operators and no operands
var ErrUndefinedVolume = errors.New("halstead volume undefined: empty vocabulary")

// HalsteadCounts holds the raw token counts behind a volume estimate
type HalsteadCounts struct {
	Operators int
	Operands  int
}

// Vocabulary is operators + operands. Program length is computed the same way,
// so both Halstead quantities collapse into this one number.
func (c HalsteadCounts) Vocabulary() int {
	return c.Operators + c.Operands
}

// Length equals Vocabulary in this estimate
func (c HalsteadCounts) Length() int {
	return c.Operators + c.Operands
}

// CountHalstead counts `+`/`-` tokens as operators and identifier references as
// operands. The operator set is intentionally narrow.
func CountHalstead(root syntax.Node) HalsteadCounts {
	return HalsteadCounts{
		Operators: syntax.Count(root, syntax.KindPlusToken, syntax.KindMinusToken),
		Operands:  syntax.Count(root, syntax.KindIdentifierName),
	}
}

// Volume returns length * log2(vocabulary)
func (c HalsteadCounts) Volume() (float64, error) {
	vocabulary := c.Vocabulary()
	if vocabulary < 1 {
		return 0, ErrUndefinedVolume
	}
	return float64(c.Length()) * math.Log2(float64(vocabulary)), nil
}

// HalsteadVolume estimates the program volume of a document
func HalsteadVolume(root syntax.Node) (float64, error) {
	return CountHalstead(root).Volume()
}
