// Package version exposes build metadata for the docschema binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = revision(readSettings())
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	Branch    string `json:"branch,omitempty"    yaml:"branch,omitempty"`
	BuildUser string `json:"buildUser,omitempty" yaml:"buildUser,omitempty"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the current build metadata. An unset Version reads as "dev".
func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}

	return Info{
		Version:   v,
		Revision:  Revision,
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  GoOS + "/" + GoArch,
	}
}

// String renders the metadata as a single line, e.g.
// "docschema dev (revision abc123, go1.25.0 linux/amd64)". Optional ldflags
// fields are appended when set.
func (i Info) String() string {
	details := []string{"revision " + i.Revision}

	if i.Branch != "" {
		details = append(details, "branch "+i.Branch)
	}

	if i.BuildUser != "" {
		details = append(details, "built by "+i.BuildUser)
	}

	if i.BuildDate != "" {
		details = append(details, "on "+i.BuildDate)
	}

	details = append(details, i.GoVersion+" "+i.Platform)

	return fmt.Sprintf("docschema %s (%s)", i.Version, strings.Join(details, ", "))
}

func readSettings() []debug.BuildSetting {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	return buildInfo.Settings
}

func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, v := range settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
