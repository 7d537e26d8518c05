package engine

import "github.com/Omar-Awad/SCNN-GPU2/tensor"

// SeedBias fills out with the per-filter bias, one call before any PE
// work runs for the layer. bias must have K entries along its first
// axis. Bias seeding happens-before all PE work.
func SeedBias(out, bias *tensor.Tensor, n, k, w, h int) {
	for ni := 0; ni < n; ni++ {
		for ki := 0; ki < k; ki++ {
			b := bias.At(ki, 0, 0, 0)
			for wi := 0; wi < w; wi++ {
				for hi := 0; hi < h; hi++ {
					out.Set(ni, ki, wi, hi, b)
				}
			}
		}
	}
}

// ApplyReLU applies elementwise max(0, x) to out. Called exactly once,
// after every PE for the layer has joined. Idempotent: applying it twice
// is equivalent to applying it once.
func ApplyReLU(out *tensor.Tensor) {
	for i, v := range out.Data {
		if v < 0 {
			out.Data[i] = 0
		}
	}
}
