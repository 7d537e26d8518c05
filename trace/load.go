package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Omar-Awad/SCNN-GPU2/network"
	"github.com/Omar-Awad/SCNN-GPU2/npy"
)

// Load reads the four captured tensors for desc from <dir>/<network>/:
// wgt-<name>.npy, bias-<name>.npy, act-<name>-0.npy and
// act-<name>-0-out.npy.
func Load(dir string, desc network.Descriptor) (*Layer, error) {
	base := filepath.Join(dir, desc.Network)
	weights, err := npy.Load(filepath.Join(base, "wgt-"+desc.Name+".npy"))
	if err != nil {
		return nil, err
	}
	bias, err := npy.Load(filepath.Join(base, "bias-"+desc.Name+".npy"))
	if err != nil {
		return nil, err
	}
	input, err := npy.Load(filepath.Join(base, "act-"+desc.Name+"-0.npy"))
	if err != nil {
		return nil, err
	}
	expected, err := npy.Load(filepath.Join(base, "act-"+desc.Name+"-0-out.npy"))
	if err != nil {
		return nil, err
	}
	return &Layer{Desc: desc, Weights: weights, Bias: bias, Input: input, Expected: expected}, nil
}

// CheckErr exits the process with a diagnostic if err is non-nil. All
// trace-loading errors are treated as fatal: there is no recoverable
// error, and nothing is retried.
func CheckErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
