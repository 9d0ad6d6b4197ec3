package cmd

import (
	"strings"

	b2 "code.cloudfoundry.org/pwshupdater/cmd/check"
	b1 "code.cloudfoundry.org/pwshupdater/cmd/install"
	b3 "code.cloudfoundry.org/pwshupdater/cmd/version"
	"code.cloudfoundry.org/pwshupdater/config"
	"code.cloudfoundry.org/pwshupdater/updater"
	"github.com/blang/semver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRoot wires the task commands. Running the root with no subcommand
// is what the agent does, and it behaves like "install".
func NewRoot(
	exit chan struct{},
	logger logrus.FieldLogger,
	source config.Source,
	overrides config.Overrides,
	runner updater.Runner,
	reporter updater.Reporter,
	buildVersion semver.Version,
) *cobra.Command {
	var (
		up = &updater.Updater{
			Runner:   runner,
			Reporter: reporter,
			Logger:   logger,
		}

		install = &b1.Install{
			Exit:      exit,
			Source:    source,
			Overrides: overrides,
			Updater:   up,
		}

		check = &b2.Check{
			Source:    source,
			Overrides: overrides,
			Updater:   up,
		}

		version = &b3.Version{
			UI:      logger,
			Version: buildVersion,
		}

		installCmd = install.Cmd()
	)

	root := &cobra.Command{
		Use:           "pwshupdater",
		Short:         "Make sure a PowerShell version is installed on the build agent",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          installCmd.RunE,
	}
	root.PersistentFlags().Bool("help", false, "")
	root.PersistentFlags().Lookup("help").Hidden = true

	usageTemplate := strings.Replace(root.UsageTemplate(), "\n"+`Use "{{.CommandPath}} [command] --help" for more information about a command.`, "", -1)
	root.SetUsageTemplate(usageTemplate)

	root.AddCommand(installCmd)
	root.AddCommand(check.Cmd())
	root.AddCommand(version.Cmd())
	return root
}
