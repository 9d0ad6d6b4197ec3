package updater

import (
	"context"
	"strings"

	"code.cloudfoundry.org/pwshupdater/config"
	"code.cloudfoundry.org/pwshupdater/runner"
	"code.cloudfoundry.org/pwshupdater/task"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -package mocks -destination mocks/runner.go code.cloudfoundry.org/pwshupdater/updater Runner
type Runner interface {
	Run(ctx context.Context, command runner.Command, relay runner.Relay) error
}

type Reporter interface {
	SetResult(result task.Result, message string)
}

type Updater struct {
	Runner   Runner
	Reporter Reporter
	Logger   logrus.FieldLogger
}

// NewCommand builds the companion script invocation. A fixed version
// always wins over a release version.
func NewCommand(conf config.Config) runner.Command {
	args := []string{conf.ScriptPath}

	if conf.Verbose {
		args = append(args, "-Verbose")
	}

	if conf.FixedVersion != "" {
		args = append(args, "-FixedVersion", conf.FixedVersion)
	} else if conf.ReleaseVersion != "" {
		args = append(args, "-ReleaseVersion", conf.ReleaseVersion)
	}

	return runner.Command{
		Executable: conf.Host.Powershell(),
		Args:       args,
	}
}

// Install runs the companion script and relays its output. Anything the
// script writes to stderr fails the task; its exit code does not.
func (u *Updater) Install(ctx context.Context, conf config.Config) error {
	command := NewCommand(conf)

	u.Logger.Infof("Using executable '%s'", command.Executable)
	u.Logger.Info(command.String())

	err := u.Runner.Run(ctx, command, &relay{logger: u.Logger, reporter: u.Reporter})
	if err != nil {
		return err
	}

	u.Logger.Info("Script finished")
	return nil
}

// Check only reports which version was asked for.
func (u *Updater) Check(conf config.Config) {
	if conf.FixedVersion != "" {
		u.Logger.Infof("Trying to install fixed PowerShell version %s", conf.FixedVersion)
	} else if conf.ReleaseVersion != "" {
		u.Logger.Infof("Installing PowerShell version %s", conf.ReleaseVersion)
	}
}

// relay fails the task with the latest run of consecutive stderr lines,
// so a multi-line error record is reported whole.
type relay struct {
	logger   logrus.FieldLogger
	reporter Reporter
	burst    []string
}

func (r *relay) Stdout(line string) {
	r.burst = nil
	r.logger.Info(line)
}

func (r *relay) Stderr(line string) {
	r.burst = append(r.burst, line)
	r.logger.Error(line)
	r.reporter.SetResult(task.Failed, strings.Join(r.burst, "\n"))
}
