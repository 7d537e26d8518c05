package engine

import "github.com/Omar-Awad/SCNN-GPU2/tensor"

// ActQueue is the compressed sparse representation of one
// (image, channel, stride-phase) slice of a layer's activations.
type ActQueue struct {
	Value []float32
	X, Y  []int32
}

// Geom is the subset of a layer's derived geometry the processing
// element needs to compute and bounds-check an output coordinate.
type Geom struct {
	N, W, H, K, Stride int
}

// ProcessingElement is the Cartesian-product multiplier array: for every
// pair in the product of an activation queue and a weight queue, it
// computes an output coordinate, bounds-checks it, and scatter-
// accumulates the partial product into the output tensor.
type ProcessingElement struct {
	// I, F are the multiplier-array's tile dimensions.
	I, F int
}

// Run consumes act and wgt and accumulates into out, which must have
// shape [N, K, W, H]. The I x F tile-blocked iteration order may be
// reordered freely within a block but must not change the overall
// pair set it produces.
func (pe ProcessingElement) Run(n int, act ActQueue, wgt WeightPartition, geom Geom, out *tensor.Tensor) {
	na, nw := len(act.Value), len(wgt.Value)
	for i := 0; i < na; i += pe.I {
		iEnd := minInt(i+pe.I, na)
		for f := 0; f < nw; f += pe.F {
			fEnd := minInt(f+pe.F, nw)
			for ii := i; ii < iEnd; ii++ {
				a, x, y := act.Value[ii], int(act.X[ii]), int(act.Y[ii])
				for ff := f; ff < fEnd; ff++ {
					w, k, r, s := wgt.Value[ff], int(wgt.K[ff]), int(wgt.R[ff]), int(wgt.S[ff])
					wOut := (x - r) / geom.Stride
					hOut := (y - s) / geom.Stride
					if wOut < 0 || wOut >= geom.W || hOut < 0 || hOut >= geom.H {
						continue
					}
					out.AddAtomic4(n, k, wOut, hOut, a*w)
				}
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
