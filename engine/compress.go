package engine

import (
	"github.com/Omar-Awad/SCNN-GPU2/tensor"
	"github.com/Omar-Awad/SCNN-GPU2/trace"
)

// WeightPartition is the compressed sparse representation of one
// (channel, stride-phase) slice of a layer's weights: four parallel
// arrays holding only the non-zero entries.
type WeightPartition struct {
	Value    []float32
	K, R, S  []int32
}

// CompressWeights partitions w by absolute input channel and by
// stride-phase (sx, sy), returning one WeightPartition per
// (channel, sx, sy) triple indexed by pos = channel*stride*stride +
// sx*stride + sy, matching the layout the tile driver looks up by.
//
// The running filter-start (k_begin) is advanced exactly once here, per
// channel group, not a second time in the tile driver.
func CompressWeights(w *tensor.Tensor, g *trace.Geometry) []WeightPartition {
	stride := g.Stride
	partitions := make([]WeightPartition, g.C*stride*stride)

	for ct := 0; ct < g.C; ct += g.Ck {
		kBegin := (ct / g.Ck) * g.Kc
		kEnd := kBegin + g.Kc
		for ck := 0; ck < g.Ck; ck++ {
			absCh := ct + ck
			for sx := 0; sx < stride; sx++ {
				for sy := 0; sy < stride; sy++ {
					part := &partitions[absCh*stride*stride+sx*stride+sy]
					for r := 0; r < g.R; r++ {
						if (r+g.Padding)%stride != sx {
							continue
						}
						for s := 0; s < g.S; s++ {
							if (s+g.Padding)%stride != sy {
								continue
							}
							for k := kBegin; k < kEnd; k++ {
								v := w.At(k, ck, r, s)
								if v == 0 {
									continue
								}
								part.Value = append(part.Value, v)
								part.K = append(part.K, int32(k))
								part.R = append(part.R, int32(r))
								part.S = append(part.S, int32(s))
							}
						}
					}
				}
			}
		}
	}
	return partitions
}
