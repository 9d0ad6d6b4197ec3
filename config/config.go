package config

import (
	"path/filepath"

	"code.cloudfoundry.org/pwshupdater/host"
)

const (
	InputReleaseVersion = "ReleaseVersion"
	InputFixedVersion   = "FixedVersion"

	VariableDebug   = "System.Debug"
	VariableAgentOS = "AGENT.OS"

	DefaultScript = "PWSHUpdater.ps1"
)

//go:generate mockgen -package mocks -destination mocks/source.go code.cloudfoundry.org/pwshupdater/config Source
type Source interface {
	Input(name string, required bool) (string, error)
	Variable(name string) string
}

type Config struct {
	ReleaseVersion string
	FixedVersion   string
	Verbose        bool
	Host           host.Host
	ScriptPath     string
}

// New reads everything a run needs from the task source. When required
// is set both version inputs must be present.
func New(source Source, required bool, overrides Overrides) (Config, error) {
	releaseVersion, err := source.Input(InputReleaseVersion, required)
	if err != nil {
		return Config{}, err
	}

	fixedVersion, err := source.Input(InputFixedVersion, required)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ReleaseVersion: releaseVersion,
		FixedVersion:   fixedVersion,
		Verbose:        source.Variable(VariableDebug) == "true",
		Host: host.Host{
			OS:          source.Variable(VariableAgentOS),
			Executables: overrides.Executables,
		},
		ScriptPath: scriptPath(overrides),
	}, nil
}

func scriptPath(overrides Overrides) string {
	script := overrides.Script
	if script == "" {
		script = DefaultScript
	}

	if filepath.IsAbs(script) {
		return script
	}
	return filepath.Join(overrides.Dir, script)
}
