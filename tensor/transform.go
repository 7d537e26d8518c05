package tensor

import "fmt"

// Pad grows the spatial dimensions (axes 2, 3) by padding on each side,
// copying the original contents centered and filling the border with
// zero. Corresponds to the source's zero_pad.
func (t *Tensor) Pad(padding int) *Tensor {
	if padding == 0 {
		return t.Clone()
	}
	n, c, x, y := t.Shape[0], t.Shape[1], t.Shape[2], t.Shape[3]
	newX, newY := x+2*padding, y+2*padding
	out := New([4]int{n, c, newX, newY})
	for ni := 0; ni < n; ni++ {
		for ci := 0; ci < c; ci++ {
			for xi := 0; xi < x; xi++ {
				for yi := 0; yi < y; yi++ {
					out.Set(ni, ci, xi+padding, yi+padding, t.At(ni, ci, xi, yi))
				}
			}
		}
	}
	return out
}

// GridPad reshapes the spatial dimensions to exactly (newX, newY),
// preserving existing cells at their (i, j) coordinate and zero filling
// the expansion. Corresponds to the source's grid_zero_pad. Requires
// newX >= current X and newY >= current Y.
func (t *Tensor) GridPad(newX, newY int) *Tensor {
	n, c, x, y := t.Shape[0], t.Shape[1], t.Shape[2], t.Shape[3]
	if newX < x || newY < y {
		panic(fmt.Sprintf("tensor.GridPad: target (%d,%d) smaller than current (%d,%d)", newX, newY, x, y))
	}
	out := New([4]int{n, c, newX, newY})
	for ni := 0; ni < n; ni++ {
		for ci := 0; ci < c; ci++ {
			for xi := 0; xi < x; xi++ {
				for yi := 0; yi < y; yi++ {
					out.Set(ni, ci, xi, yi, t.At(ni, ci, xi, yi))
				}
			}
		}
	}
	return out
}

// SplitChannels views each image's elements, flattened in row-major
// (channel, x, y) order to an index f, as k*x*y and redistributes them
// into a synthetic [N, k, x, y] tensor using the mapping newK = f/(x*y),
// newI = (f mod x*y)/y, newJ = (f mod x*y) mod y.
// Used for both activations and weights during the FC pre-pass sequence.
// Panics unless the current per-image element count C*X*Y equals k*x*y.
func (t *Tensor) SplitChannels(k, x, y int) *Tensor {
	n, c := t.Shape[0], t.Shape[1]
	curX, curY := t.Shape[2], t.Shape[3]
	if c*curX*curY != k*x*y {
		panic(fmt.Sprintf("tensor.SplitChannels: %d*%d*%d elements cannot be redistributed into %d*%d*%d",
			c, curX, curY, k, x, y))
	}
	out := New([4]int{n, k, x, y})
	for ni := 0; ni < n; ni++ {
		for ci := 0; ci < c; ci++ {
			for xi := 0; xi < curX; xi++ {
				for yi := 0; yi < curY; yi++ {
					flat := (ci*curX+xi)*curY + yi
					newK := flat / (x * y)
					rem := flat % (x * y)
					newI := rem / y
					newJ := rem % y
					out.Set(ni, newK, newI, newJ, t.At(ni, ci, xi, yi))
				}
			}
		}
	}
	return out
}

// ReshapeTo2D folds the spatial dimensions into the channel axis,
// producing a [N, C*X*Y, 1, 1] tensor. Corresponds to the source's
// reshape_to_2D, used only for fully-connected layers.
func (t *Tensor) ReshapeTo2D() *Tensor {
	n, c, x, y := t.Shape[0], t.Shape[1], t.Shape[2], t.Shape[3]
	return t.Reshape([4]int{n, c * x * y, 1, 1})
}
