package task

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Environment reads task inputs and pipeline variables the way the agent
// exposes them to a task process: as environment variables.
type Environment struct {
	Getenv func(key string) string
}

func (e *Environment) Input(name string, required bool) (string, error) {
	value := strings.TrimSpace(e.getenv("INPUT_" + inputKey(name)))
	if required && value == "" {
		return "", errors.Errorf("Input required: %s", name)
	}

	return value, nil
}

func (e *Environment) Variable(name string) string {
	return e.getenv(variableKey(name))
}

func (e *Environment) getenv(key string) string {
	if e.Getenv == nil {
		return os.Getenv(key)
	}
	return e.Getenv(key)
}

func inputKey(name string) string {
	return strings.ToUpper(strings.Replace(name, " ", "_", -1))
}

func variableKey(name string) string {
	key := strings.Replace(name, ".", "_", -1)
	key = strings.Replace(key, " ", "_", -1)
	return strings.ToUpper(key)
}
