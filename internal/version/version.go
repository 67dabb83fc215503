package version

import (
	"strconv"

	"github.com/fatih/color"
)

// Version information for the errata CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""

	// apiVersion and apiRevision are the locator constants stamped into
	// every code this build encodes (-X errata/internal/version.apiVersion=3).
	// Empty means no library/version context applies, encoded as zero.
	apiVersion  = ""
	apiRevision = ""
)

// APIVersion returns the build-time API version number (0..127, 0 default).
func APIVersion() int { return parseField(apiVersion, 0x7f) }

// APIRevision returns the build-time API revision number (0..65535, 0 default).
func APIRevision() int { return parseField(apiRevision, 0xffff) }

func parseField(s string, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
