// Package version exposes build-time metadata set through ldflags.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "\
//	  -X github.com/port-russell/marina-api/version.Version=1.2.3 \
//	  -X github.com/port-russell/marina-api/version.Revision=abc123 \
//	  -X 'github.com/port-russell/marina-api/version.BuiltAt=2024-01-15T10:30:00Z'"
var (
	// Version is the current version
	Version = "0.0.0"

	// Revision is the short commit hash of the source tree
	Revision = "unknown"

	// BuiltAt is the build time
	BuiltAt = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"builtAt"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the build metadata.
func GetVersionInfo() Info {
	return Info{
		Version:   Version,
		Revision:  Revision,
		BuiltAt:   BuiltAt,
		GoVersion: runtime.Version(),
	}
}

// String returns a string representation of version information
func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nRevision: %s\nBuilt At: %s\nGo Version: %s",
		i.Version, i.Revision, i.BuiltAt, i.GoVersion)
}

// JSON returns a JSON representation of version information
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Print prints version information to stdout
func Print() {
	fmt.Println(GetVersionInfo().String())
}
