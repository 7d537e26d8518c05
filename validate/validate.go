// Package validate compares an engine's computed layer output against
// the captured reference output, using a fixed absolute tolerance.
package validate

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Omar-Awad/SCNN-GPU2/tensor"
)

// Tolerance is the absolute tolerance applied to every element.
const Tolerance = 0.01

// Report summarizes one layer's comparison against its reference output.
type Report struct {
	LayerName   string
	Elements    int
	Mismatches  int
	MaxAbsError float64
	Mismatched  []Mismatch
}

// Mismatch records a single out-of-tolerance element, up to a capped
// count so a badly broken layer doesn't blow up the report.
type Mismatch struct {
	Index     int
	Got, Want float32
	AbsError  float64
}

// MaxRecordedMismatches bounds how many individual mismatches a Report
// keeps, to keep a systematically-wrong layer's report readable.
const MaxRecordedMismatches = 32

// Validator compares computed output against a captured reference. In
// Strict mode Check returns as soon as it finds the first out-of-
// tolerance element; otherwise it scans every element and returns a
// full Report.
type Validator struct {
	Strict bool
}

// Check compares got against want elementwise; both must have identical
// shape. It returns an error if any element falls outside Tolerance.
func (v Validator) Check(layerName string, got, want *tensor.Tensor) (Report, error) {
	if got.Shape != want.Shape {
		return Report{}, fmt.Errorf("validate: layer %s: shape mismatch got %v want %v", layerName, got.Shape, want.Shape)
	}
	r := Report{LayerName: layerName, Elements: len(got.Data)}
	for i := range got.Data {
		g, w := got.Data[i], want.Data[i]
		e := absDiff(float64(g), float64(w))
		if e > r.MaxAbsError {
			r.MaxAbsError = e
		}
		if scalar.EqualWithinAbs(float64(g), float64(w), Tolerance) {
			continue
		}
		r.Mismatches++
		if len(r.Mismatched) < MaxRecordedMismatches {
			r.Mismatched = append(r.Mismatched, Mismatch{Index: i, Got: g, Want: w, AbsError: e})
		}
		if v.Strict {
			return r, fmt.Errorf("validate: layer %s: element %d outside tolerance %g: got %g want %g",
				layerName, i, Tolerance, g, w)
		}
	}
	if r.Mismatches > 0 {
		return r, fmt.Errorf("validate: layer %s: %d/%d elements outside tolerance %g, max abs error %g",
			layerName, r.Mismatches, r.Elements, Tolerance, r.MaxAbsError)
	}
	return r, nil
}

// Check runs a default, non-strict Validator. Convenience for callers
// that don't need strict-mode short-circuiting.
func Check(layerName string, got, want *tensor.Tensor) (Report, error) {
	return Validator{}.Check(layerName, got, want)
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
