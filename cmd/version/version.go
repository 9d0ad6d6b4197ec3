package version

import (
	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

type UI interface {
	Infof(format string, args ...interface{})
}

type Version struct {
	UI      UI
	Version semver.Version
}

func (v *Version) Execute() {
	v.UI.Infof("pwshupdater: %s", v.Version)
}

func (v *Version) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:  "version",
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			v.Execute()
		},
	}
}

// Parse reads a version injected at build time, falling back to 0.0.0
// for dev builds.
func Parse(raw string) semver.Version {
	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return semver.Version{}
	}
	return v
}
