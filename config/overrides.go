package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/pwshupdater/host"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Overrides is the optional <binary>.yml file shipped next to the task.
type Overrides struct {
	Script           string `yaml:"script"`
	host.Executables `yaml:",inline"`

	// Dir is where relative paths are resolved from. It is not read from the file.
	Dir string `yaml:"-"`
}

// OverridesPath returns the overrides file location for the running
// binary, e.g. /tasks/pwshupdater.yml for /tasks/pwshupdater.exe.
func OverridesPath() (string, error) {
	fullexecpath, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate task binary")
	}

	dir, execname := filepath.Split(fullexecpath)
	ext := filepath.Ext(execname)
	name := execname[:len(execname)-len(ext)]

	return filepath.Join(dir, name+".yml"), nil
}

// LoadOverrides reads path if it exists. A missing file yields the
// defaults with Dir set to the file's directory.
func LoadOverrides(path string) (Overrides, error) {
	overrides := Overrides{Dir: filepath.Dir(path)}

	contents, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return overrides, nil
	} else if err != nil {
		return Overrides{}, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := yaml.UnmarshalStrict(contents, &overrides); err != nil {
		return Overrides{}, errors.Wrapf(err, "failed to parse %s", path)
	}

	overrides.Dir = filepath.Dir(path)
	return overrides, nil
}
