// Package build provides domain entities for build information.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// DevInfo is used when the binary was built without ldflags.
func DevInfo() Info {
	return Info{
		Version:   "dev",
		Commit:    "none",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
	}
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/multiview"
}
