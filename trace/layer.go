// Package trace assembles a single layer's captured tensors (weights,
// bias, input activations, reference output activations) from disk and
// runs the pre-pass shape transforms the engine expects, producing the
// Geometry the weight compressor, tile driver and validator all need.
package trace

import (
	"fmt"

	"github.com/Omar-Awad/SCNN-GPU2/network"
	"github.com/Omar-Awad/SCNN-GPU2/tensor"
)

// Layer holds one network layer's tensors plus its static descriptor.
type Layer struct {
	Desc     network.Descriptor
	Weights  *tensor.Tensor
	Bias     *tensor.Tensor
	Input    *tensor.Tensor
	Expected *tensor.Tensor
}

// Geometry is the set of derived dimensions the engine operates over
// once a layer's pre-pass transforms have run.
type Geometry struct {
	N, C, X, Y       int
	K, Ck, Groups    int
	Kc, R, S         int
	W, H             int
	Stride, Padding  int
}

// Prepare runs the fixed pre-pass sequence: for fully-connected layers,
// reshape the activations to 2D, then split activations and weights into
// synthetic 4D tiles;
// for all layers, pad and grid-pad the activations to the tile geometry
// the engine expects. It mutates l's Weights and Input fields in place
// (replacing them with the transformed tensors) and returns the derived
// Geometry.
//
// forceOneImage clamps N to 1 regardless of the captured batch size.
func (l *Layer) Prepare(forceOneImage bool) (*Geometry, error) {
	if l.Desc.Kind == network.FullyConnected {
		act := l.Input.ReshapeTo2D()
		c := act.Shape[1]
		if c%256 != 0 {
			return nil, fmt.Errorf("trace: layer %s: FC activation channel count %d is not a multiple of 256", l.Desc.Name, c)
		}
		l.Input = act.SplitChannels(c/256, 16, 16)

		ck := l.Weights.Shape[1]
		if ck%256 != 0 {
			return nil, fmt.Errorf("trace: layer %s: FC weight channel count %d is not a multiple of 256", l.Desc.Name, ck)
		}
		l.Weights = l.Weights.SplitChannels(ck/256, 16, 16)
	}

	l.Input = l.Input.Pad(l.Desc.Padding)
	x, y := l.Input.Shape[2], l.Input.Shape[3]
	l.Input = l.Input.GridPad(x, y)

	n := l.Input.Shape[0]
	if forceOneImage {
		n = 1
	}
	c, x, y := l.Input.Shape[1], l.Input.Shape[2], l.Input.Shape[3]
	k, ck, r, s := l.Weights.Shape[0], l.Weights.Shape[1], l.Weights.Shape[2], l.Weights.Shape[3]

	if ck == 0 || c%ck != 0 {
		return nil, fmt.Errorf("trace: layer %s: activation channels %d not a multiple of weight channels %d", l.Desc.Name, c, ck)
	}
	groups := c / ck
	if groups == 0 || k%groups != 0 {
		return nil, fmt.Errorf("trace: layer %s: filter count %d not a multiple of group count %d", l.Desc.Name, k, groups)
	}
	kc := k / groups

	stride := l.Desc.Stride
	w := (x-r)/stride + 1
	h := (y-s)/stride + 1
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("trace: layer %s: output geometry (%d,%d) is degenerate for input (%d,%d) filter (%d,%d) stride %d",
			l.Desc.Name, w, h, x, y, r, s, stride)
	}

	return &Geometry{
		N: n, C: c, X: x, Y: y,
		K: k, Ck: ck, Groups: groups,
		Kc: kc, R: r, S: s,
		W: w, H: h,
		Stride: stride, Padding: l.Desc.Padding,
	}, nil
}
