package tensor

import "unsafe"

// rawPtr returns the address of a float32 slice element for use with the
// sync/atomic bit-pattern CAS in AddAtomic.
func rawPtr(f *float32) unsafe.Pointer {
	return unsafe.Pointer(f)
}
