package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Omar-Awad/SCNN-GPU2/tensor"
	"github.com/Omar-Awad/SCNN-GPU2/trace"
)

// Driver runs one layer's tile schedule: for every image and every
// channel group it fans the Ck channels within the group out across a
// bounded worker pool, builds each channel's compressed activation
// queues (one per stride phase), and feeds them through a
// ProcessingElement against the matching WeightPartition.
type Driver struct {
	Config Config
}

// Run drives l against the precomputed weight partitions, accumulating
// into out, which must already be bias-seeded and shaped [N, K, W, H].
// The ck loop is the parallelism axis, bounded by cfg.Threads, mirroring
// the source's OpenMP parallel-for over input channels within a group.
func (d Driver) Run(ctx context.Context, l *trace.Layer, geom *trace.Geometry, partitions []WeightPartition, out *tensor.Tensor) error {
	pe := ProcessingElement{I: d.Config.I, F: d.Config.F}
	peGeom := Geom{N: geom.N, W: geom.W, H: geom.H, K: geom.K, Stride: geom.Stride}
	stride := geom.Stride

	for n := 0; n < geom.N; n++ {
		for ct := 0; ct < geom.C; ct += geom.Ck {
			g, ctx2 := errgroup.WithContext(ctx)
			g.SetLimit(d.Config.Threads)
			for ck := 0; ck < geom.Ck; ck++ {
				n, ct, ck := n, ct, ck
				g.Go(func() error {
					if err := ctx2.Err(); err != nil {
						return err
					}
					absCh := ct + ck
					queues := buildActQueues(l.Input, n, absCh, stride)
					for sx := 0; sx < stride; sx++ {
						for sy := 0; sy < stride; sy++ {
							q := queues[sx*stride+sy]
							if len(q.Value) == 0 {
								continue
							}
							part := partitions[absCh*stride*stride+sx*stride+sy]
							if len(part.Value) == 0 {
								continue
							}
							pe.Run(n, q, part, peGeom, out)
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildActQueues scans channel ch of image n in act and buckets its
// non-zero entries into stride*stride compressed queues by stride phase
// (x%stride, y%stride), dropping zeros.
func buildActQueues(act *tensor.Tensor, n, ch, stride int) []ActQueue {
	queues := make([]ActQueue, stride*stride)
	x, y := act.Shape[2], act.Shape[3]
	for xi := 0; xi < x; xi++ {
		for yi := 0; yi < y; yi++ {
			v := act.At(n, ch, xi, yi)
			if v == 0 {
				continue
			}
			q := &queues[(xi%stride)*stride+yi%stride]
			q.Value = append(q.Value, v)
			q.X = append(q.X, int32(xi))
			q.Y = append(q.Y, int32(yi))
		}
	}
	return queues
}
