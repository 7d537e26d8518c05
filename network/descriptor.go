// Package network holds the static per-network layer tables: the name,
// kind, ReLU flag, stride and padding for each layer of a captured SCNN
// trace. These tables are plumbing — generated once from the network
// definition used to produce the trace files — not computed by the
// engine.
package network

// Kind distinguishes a 2D convolution layer from a fully-connected layer,
// the latter handled by reshaping into a degenerate convolution.
type Kind int

const (
	Convolution Kind = iota
	FullyConnected
)

func (k Kind) String() string {
	if k == FullyConnected {
		return "fc"
	}
	return "conv"
}

// Descriptor is an immutable record describing one layer of a network.
type Descriptor struct {
	Network string
	Name    string
	Kind    Kind
	ReLU    bool
	Stride  int
	Padding int
}
