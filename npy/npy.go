// Package npy loads the on-disk dense numerical array format used by the
// captured SCNN traces (net_traces/<network>/{wgt,bias,act}-<layer>*.npy):
// little-endian float32 payloads with a small Python-dict shape header.
// Only the subset of the NPY v1.0 format actually emitted by the trace
// capture tool (flat '<f4' arrays, C order) is supported.
package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Omar-Awad/SCNN-GPU2/tensor"
)

var magic = []byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

var shapeRe = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
var descrRe = regexp.MustCompile(`'descr':\s*'([^']*)'`)
var fortranRe = regexp.MustCompile(`'fortran_order':\s*(True|False)`)

// Load reads an NPY file from path and returns it as a four dimensional
// Tensor, padding missing trailing axes to 1. Returns an error for
// missing files or malformed input; the caller is expected to treat
// that error as fatal.
func Load(path string) (*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("npy: %w", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	hdr := make([]byte, 6)
	if _, err := readFull(r, hdr); err != nil {
		return nil, fmt.Errorf("npy: %s: reading magic: %w", path, err)
	}
	for i, b := range magic {
		if hdr[i] != b {
			return nil, fmt.Errorf("npy: %s: not an NPY file", path)
		}
	}
	ver := make([]byte, 2)
	if _, err := readFull(r, ver); err != nil {
		return nil, fmt.Errorf("npy: %s: reading version: %w", path, err)
	}

	var headerLen int
	if ver[0] == 1 {
		lenBuf := make([]byte, 2)
		if _, err := readFull(r, lenBuf); err != nil {
			return nil, fmt.Errorf("npy: %s: reading header length: %w", path, err)
		}
		headerLen = int(binary.LittleEndian.Uint16(lenBuf))
	} else {
		lenBuf := make([]byte, 4)
		if _, err := readFull(r, lenBuf); err != nil {
			return nil, fmt.Errorf("npy: %s: reading header length: %w", path, err)
		}
		headerLen = int(binary.LittleEndian.Uint32(lenBuf))
	}

	headerBuf := make([]byte, headerLen)
	if _, err := readFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("npy: %s: reading header: %w", path, err)
	}
	header := string(headerBuf)

	descrM := descrRe.FindStringSubmatch(header)
	if descrM == nil {
		return nil, fmt.Errorf("npy: %s: missing descr in header", path)
	}
	descr := descrM[1]
	if descr != "<f4" && descr != "|f4" && descr != "=f4" {
		return nil, fmt.Errorf("npy: %s: unsupported dtype %q, only float32 traces are supported", path, descr)
	}

	if m := fortranRe.FindStringSubmatch(header); m != nil && m[1] == "True" {
		return nil, fmt.Errorf("npy: %s: fortran-ordered arrays are not supported", path)
	}

	shapeM := shapeRe.FindStringSubmatch(header)
	if shapeM == nil {
		return nil, fmt.Errorf("npy: %s: missing shape in header", path)
	}
	shape, err := parseShape(shapeM[1])
	if err != nil {
		return nil, fmt.Errorf("npy: %s: %w", path, err)
	}

	n := 1
	for _, d := range shape {
		n *= d
	}
	raw := make([]byte, n*4)
	if _, err := readFull(r, raw); err != nil {
		return nil, fmt.Errorf("npy: %s: reading payload: %w", path, err)
	}
	data := make([]float32, n)
	for i := range data {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		data[i] = math.Float32frombits(bits)
	}

	var dims [4]int
	for i := range dims {
		dims[i] = 1
	}
	switch {
	case len(shape) > 4:
		return nil, fmt.Errorf("npy: %s: shape %v has more than 4 dimensions", path, shape)
	default:
		copy(dims[:len(shape)], shape)
	}
	return tensor.FromSlice(dims, data), nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	var out []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid shape entry %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
