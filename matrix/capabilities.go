// SPDX-License-Identifier: MIT

package matrix

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Capabilities describes the build and host features relevant to the
// compute backends. Kernels are portable Go; the SIMD flags are reported
// for diagnostics and do not change results.
type Capabilities struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	// SIMD lists detected vector extensions, e.g. "avx2", "neon".
	SIMD []string
	// Alignment is the row alignment of owned matrices, in cells.
	Alignment int
}

// HasSIMD reports whether any vector extension was detected.
func (c Capabilities) HasSIMD() bool { return len(c.SIMD) > 0 }

// DetectCapabilities inspects the running host.
func DetectCapabilities() Capabilities {
	return Capabilities{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		SIMD:       simdFeatures(),
		Alignment:  alignCells,
	}
}

func simdFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			out = append(out, "sse2")
		}
		if cpu.X86.HasSSE41 {
			out = append(out, "sse4.1")
		}
		if cpu.X86.HasAVX2 {
			out = append(out, "avx2")
		}
		if cpu.X86.HasAVX512F {
			out = append(out, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "neon")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "sve")
		}
	}

	return out
}
