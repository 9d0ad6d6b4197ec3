package check

import (
	"code.cloudfoundry.org/pwshupdater/config"
	"github.com/spf13/cobra"
)

type Updater interface {
	Check(conf config.Config)
}

// Check is the entry point used on agents where the installer script is
// not run. Both version inputs are required.
type Check struct {
	Source    config.Source
	Overrides config.Overrides
	Updater   Updater
}

func (c *Check) Execute() error {
	conf, err := config.New(c.Source, true, c.Overrides)
	if err != nil {
		return err
	}

	c.Updater.Check(conf)
	return nil
}

func (c *Check) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report the requested PowerShell version without installing it",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.Execute()
		},
	}
}
