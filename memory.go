// Package lenient holds helpers shared by the decoders in its
// subpackages.
package lenient

import "runtime"

// Wipe sets every byte in x to zero.
//
// Decoders call it on output buffers of rejected input so that
// partially decoded data does not outlive the call.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// Keep the loop from being treated as dead stores.
	runtime.KeepAlive(x)
}
