package engine

import (
	"context"
	"testing"

	"github.com/Omar-Awad/SCNN-GPU2/network"
	"github.com/Omar-Awad/SCNN-GPU2/tensor"
	"github.com/Omar-Awad/SCNN-GPU2/trace"
)

func TestBuildActQueuesBucketsByStridePhase(t *testing.T) {
	act := tensor.New([4]int{1, 1, 4, 4})
	act.Set(0, 0, 0, 0, 1)
	act.Set(0, 0, 1, 1, 2)
	act.Set(0, 0, 2, 2, 3)
	act.Set(0, 0, 0, 1, 0)

	queues := buildActQueues(act, 0, 0, 2)
	if len(queues[0].Value) != 2 {
		t.Error("got", len(queues[0].Value), "entries in phase (0,0), expect 2")
	}
	if len(queues[1*2+1].Value) != 1 {
		t.Error("got", len(queues[1*2+1].Value), "entries in phase (1,1), expect 1")
	}
}

func TestDriverRunAccumulatesThroughPartitions(t *testing.T) {
	weights := tensor.New([4]int{1, 1, 1, 1})
	weights.Set(0, 0, 0, 0, 2)
	input := tensor.New([4]int{1, 1, 2, 2})
	input.Set(0, 0, 0, 0, 3)
	input.Set(0, 0, 1, 1, 4)

	l := &trace.Layer{
		Desc:    network.Descriptor{Network: "t", Name: "c", Kind: network.Convolution, Stride: 1, Padding: 0},
		Weights: weights,
		Bias:    tensor.New([4]int{1, 1, 1, 1}),
		Input:   input,
	}
	geom, err := l.Prepare(false)
	if err != nil {
		t.Fatal(err)
	}
	partitions := CompressWeights(l.Weights, geom)
	out := tensor.New([4]int{geom.N, geom.K, geom.W, geom.H})

	drv := Driver{Config: Config{I: 2, F: 2, Threads: 2}}
	if err := drv.Run(context.Background(), l, geom, partitions, out); err != nil {
		t.Fatal(err)
	}
	if v := out.At(0, 0, 0, 0); v != 6 {
		t.Error("got", v, "expect", 6)
	}
	if v := out.At(0, 0, 1, 1); v != 8 {
		t.Error("got", v, "expect", 8)
	}
}
