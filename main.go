package main

import (
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/pwshupdater/cmd"
	"code.cloudfoundry.org/pwshupdater/cmd/version"
	"code.cloudfoundry.org/pwshupdater/config"
	"code.cloudfoundry.org/pwshupdater/runner"
	"code.cloudfoundry.org/pwshupdater/task"
	"github.com/sirupsen/logrus"
)

var buildVersion = "0.0.0-dev"

func main() {
	exitChan := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	signal.Notify(sigChan, syscall.SIGTERM)

	go func() {
		<-sigChan
		close(exitChan)
	}()

	var (
		env      = &task.Environment{}
		reporter = task.NewReporter(os.Stdout)
		logger   = logrus.New()
	)

	logger.Out = os.Stdout
	logger.Formatter = &task.Formatter{}
	if env.Variable(config.VariableDebug) == "true" {
		logger.Level = logrus.DebugLevel
	}

	overrides, err := loadOverrides(logger)
	if err != nil {
		reporter.SetResult(task.Failed, err.Error())
		os.Exit(1)
	}

	root := cmd.NewRoot(
		exitChan,
		logger,
		env,
		overrides,
		&runner.Powershell{},
		reporter,
		version.Parse(buildVersion),
	)

	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		reporter.SetResult(task.Failed, err.Error())
	}

	if result, _ := reporter.Result(); result == task.Failed {
		os.Exit(1)
	}
}

func loadOverrides(logger logrus.FieldLogger) (config.Overrides, error) {
	path, err := config.OverridesPath()
	if err != nil {
		return config.Overrides{}, err
	}

	logger.Debugf("Reading overrides from %s", path)
	return config.LoadOverrides(path)
}
