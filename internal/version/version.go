// Package version holds build metadata of the arraylint CLI.
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with its major, minor and patch parts coloured.
// Anything after the patch number (a pre-release tag) stays plain.
func Colored() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch) + rest
}

// String renders the full version line, e.g.
// "arraylint 0.1.0-dev (commit abc123, built 2024-01-15)".
func String(colored bool) string {
	v := Version
	if colored {
		v = Colored()
	}
	var meta []string
	if GitCommit != "" {
		meta = append(meta, "commit "+GitCommit)
	}
	if BuildDate != "" {
		meta = append(meta, "built "+BuildDate)
	}
	if len(meta) == 0 {
		return "arraylint " + v
	}
	return fmt.Sprintf("arraylint %s (%s)", v, strings.Join(meta, ", "))
}
