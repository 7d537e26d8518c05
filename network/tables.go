package network

// AlexNet returns the bvlc_alexnet layer table in forward order.
func AlexNet() []Descriptor {
	const net = "bvlc_alexnet"
	return []Descriptor{
		{Network: net, Name: "conv1", Kind: Convolution, ReLU: true, Stride: 4, Padding: 0},
		{Network: net, Name: "conv2", Kind: Convolution, ReLU: true, Stride: 1, Padding: 2},
		{Network: net, Name: "conv3", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "conv4", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "conv5", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "fc6", Kind: FullyConnected, ReLU: true, Stride: 1, Padding: 0},
		{Network: net, Name: "fc7", Kind: FullyConnected, ReLU: true, Stride: 1, Padding: 0},
		{Network: net, Name: "fc8", Kind: FullyConnected, ReLU: false, Stride: 1, Padding: 0},
	}
}

// VGGCNNS returns the vgg_cnn_s layer table in forward order.
func VGGCNNS() []Descriptor {
	const net = "vgg_cnn_s"
	return []Descriptor{
		{Network: net, Name: "conv1", Kind: Convolution, ReLU: true, Stride: 2, Padding: 0},
		{Network: net, Name: "conv2", Kind: Convolution, ReLU: true, Stride: 1, Padding: 0},
		{Network: net, Name: "conv3", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "conv4", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "conv5", Kind: Convolution, ReLU: true, Stride: 1, Padding: 1},
		{Network: net, Name: "fc6", Kind: FullyConnected, ReLU: true, Stride: 1, Padding: 0},
		{Network: net, Name: "fc7", Kind: FullyConnected, ReLU: true, Stride: 1, Padding: 0},
		{Network: net, Name: "fc8", Kind: FullyConnected, ReLU: false, Stride: 1, Padding: 0},
	}
}

// ByName returns the layer table for a known network name, or nil with
// ok false if the network is not recognised.
func ByName(name string) (layers []Descriptor, ok bool) {
	switch name {
	case "bvlc_alexnet":
		return AlexNet(), true
	case "vgg_cnn_s":
		return VGGCNNS(), true
	default:
		return nil, false
	}
}
