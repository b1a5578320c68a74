// Package clamp provides generic helpers for constraining ordered values to
// a closed interval. The helpers live in pkg/util; env-driven ranges in pkg/bounds.
package clamp

import (
	"embed"
	"regexp"
	"strings"
)

//go:embed VERSION BUILD
var EmbeddedFS embed.FS

const LibraryName = "clamp"

var buildNumber = regexp.MustCompile(`\d+`)

// GetVersion returns "<VERSION>.<BUILD>", falling back to 0.0.0 and "local".
func GetVersion() string {
	version := "0.0.0"
	if b, err := EmbeddedFS.ReadFile("VERSION"); err == nil {
		version = strings.TrimSpace(string(b))
	}

	build := "local"
	if b, err := EmbeddedFS.ReadFile("BUILD"); err == nil {
		build = strings.TrimSpace(string(b))
		if match := buildNumber.FindString(build); match != "" {
			build = match
		}
	}

	return version + "." + build
}
