// Package report summarizes a run across every layer: a running mean and
// standard deviation of each layer's validation error, plus a bar chart
// rendering of those errors.
package report

import "math"

// Average is a running mean and standard deviation, computed online as
// per http://www.johndcook.com/blog/standard_deviation/ so a run's error
// summary doesn't need to retain every sample.
type Average struct {
	Count, Mean float64
	Var, StdDev float64
	oldM, oldV  float64
}

// Add folds x into the running statistics.
func (s *Average) Add(x float64) {
	s.Count++
	if s.Count == 1 {
		s.oldM, s.Mean = x, x
		s.oldV = 0
	} else {
		s.Mean = s.oldM + (x-s.oldM)/s.Count
		s.Var = s.oldV + (x-s.oldM)*(x-s.Mean)
		s.oldM, s.oldV = s.Mean, s.Var
		if s.Count > 1 {
			s.StdDev = math.Sqrt(s.Var / (s.Count - 1))
		}
	}
}
