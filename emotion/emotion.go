// Package emotion turns raw classifier label scores into validated distributions.
package emotion

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Epsilon is the tolerance used when checking that a distribution sums to 1.
const Epsilon = 1e-6

var (
	ErrEmptyDistribution = errors.New("emotion: empty distribution")
	ErrInvalidScore      = errors.New("emotion: invalid score")
)

// Raw is a label -> score mapping as returned by a classifier. Scores are
// non-negative but need not sum to anything in particular.
type Raw map[string]float64

// Distribution is a normalized Raw: values in [0,1] summing to 1.
type Distribution map[string]float64

// Normalize divides every score in raw by the total. All labels are kept.
func Normalize(raw Raw) (Distribution, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDistribution
	}
	total := 0.0
	for label, s := range raw {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			return nil, fmt.Errorf("%w: %q=%v", ErrInvalidScore, label, s)
		}
		total += s
	}
	if total == 0 {
		return nil, ErrEmptyDistribution
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total overflows", ErrInvalidScore)
	}
	out := make(Distribution, len(raw))
	for label, s := range raw {
		out[label] = s / total
	}
	return out, nil
}

// Labels returns the labels in canonical (alphabetical) order.
func (d Distribution) Labels() []string {
	labels := make([]string, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, k := range d.Labels() {
		sum += d[k]
	}
	return sum
}

// Valid reports whether d is empty or sums to 1 within Epsilon.
func (d Distribution) Valid() bool {
	if len(d) == 0 {
		return true
	}
	return math.Abs(d.Sum()-1) <= Epsilon
}

// Dominant returns the label with the highest value. Ties go to the label
// that sorts first. ok is false for an empty distribution.
func Dominant(d Distribution) (label string, ok bool) {
	best := math.Inf(-1)
	for _, k := range d.Labels() {
		if d[k] > best {
			label, best, ok = k, d[k], true
		}
	}
	return label, ok
}
