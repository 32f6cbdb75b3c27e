// SPDX-License-Identifier: MIT

package tropical

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tropical/matrix"
)

// Version components.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version is "major.minor.patch".
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

// Capabilities reports the host features seen by the compute backends.
func Capabilities() matrix.Capabilities {
	return matrix.DetectCapabilities()
}

// BuildConfig describes the version, platform, detected SIMD extensions and
// the process-wide default backend in one line. Informational only.
func BuildConfig() string {
	c := Capabilities()
	simd := "none"
	if c.HasSIMD() {
		simd = strings.Join(c.SIMD, ",")
	}

	return fmt.Sprintf("tropical %s %s/%s cpus=%d gomaxprocs=%d simd=%s backend=%s",
		Version, c.GOOS, c.GOARCH, c.NumCPU, c.GOMAXPROCS, simd, matrix.DefaultBackend().Name())
}
