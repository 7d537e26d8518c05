package engine

import (
	"testing"

	"github.com/Omar-Awad/SCNN-GPU2/tensor"
)

func TestProcessingElementScatterAccumulate(t *testing.T) {
	act := ActQueue{Value: []float32{2, 3}, X: []int32{0, 2}, Y: []int32{0, 2}}
	wgt := WeightPartition{Value: []float32{5}, K: []int32{0}, R: []int32{0}, S: []int32{0}}
	geom := Geom{N: 1, W: 3, H: 3, K: 1, Stride: 1}
	out := tensor.New([4]int{1, 1, 3, 3})

	pe := ProcessingElement{I: 2, F: 2}
	pe.Run(0, act, wgt, geom, out)

	if v := out.At(0, 0, 0, 0); v != 10 {
		t.Error("got", v, "expect", 10)
	}
	if v := out.At(0, 0, 2, 2); v != 15 {
		t.Error("got", v, "expect", 15)
	}
}

func TestProcessingElementDropsOutOfBoundsCoordinates(t *testing.T) {
	act := ActQueue{Value: []float32{1}, X: []int32{0}, Y: []int32{0}}
	wgt := WeightPartition{Value: []float32{1}, K: []int32{0}, R: []int32{5}, S: []int32{5}}
	geom := Geom{N: 1, W: 3, H: 3, K: 1, Stride: 1}
	out := tensor.New([4]int{1, 1, 3, 3})

	pe := ProcessingElement{I: 4, F: 4}
	pe.Run(0, act, wgt, geom, out)

	for _, v := range out.Data {
		if v != 0 {
			t.Error("expected all-zero output, got", out.Data)
			break
		}
	}
}

func TestProcessingElementTileSizeDoesNotChangeResult(t *testing.T) {
	act := ActQueue{Value: []float32{1, 2, 3, 4}, X: []int32{0, 1, 2, 3}, Y: []int32{0, 1, 2, 3}}
	wgt := WeightPartition{Value: []float32{1, 1}, K: []int32{0, 0}, R: []int32{0, 0}, S: []int32{0, 0}}
	geom := Geom{N: 1, W: 4, H: 4, K: 1, Stride: 1}

	small := tensor.New([4]int{1, 1, 4, 4})
	ProcessingElement{I: 1, F: 1}.Run(0, act, wgt, geom, small)

	large := tensor.New([4]int{1, 1, 4, 4})
	ProcessingElement{I: 64, F: 64}.Run(0, act, wgt, geom, large)

	for i := range small.Data {
		if small.Data[i] != large.Data[i] {
			t.Error("tile size changed result: got", small.Data, large.Data)
			break
		}
	}
}
