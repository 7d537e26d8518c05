// Package engine implements the SCNN inner compute engine: the offline
// weight compressor, the tile driver that assembles per-tile activation
// queues, the Cartesian-product processing element, and the bias/ReLU
// output finishing around it. The tensor store and I/O it runs on live
// in the tensor/network/trace/npy packages.
package engine

// Config holds the engine's tunable constants.
type Config struct {
	// I, F are the processing element's multiplier-array dimensions.
	I, F int
	// Threads bounds the number of goroutines processing ck slices of
	// a single (n, ct) tile concurrently.
	Threads int
	// ForceOneImage restricts every layer to its first image (N = 1)
	// regardless of the captured batch size.
	ForceOneImage bool
}

// DefaultConfig is a 4x4 PE, a single worker thread, and single-image
// mode enabled.
func DefaultConfig() Config {
	return Config{I: 4, F: 4, Threads: 1, ForceOneImage: true}
}
