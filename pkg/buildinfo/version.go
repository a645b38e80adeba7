// SPDX-License-Identifier: GPL-3.0-or-later

package buildinfo

import (
	"fmt"
	"runtime"
)

// Version stores the check's version number. It's set during the build process using build flags.
var Version = "v0.0.0"

// Info returns a one line description of the build.
func Info() string {
	return fmt.Sprintf("version=%s, go=%s, os=%s/%s", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
