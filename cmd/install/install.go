package install

import (
	"context"

	"code.cloudfoundry.org/pwshupdater/config"
	"github.com/spf13/cobra"
)

type Updater interface {
	Install(ctx context.Context, conf config.Config) error
}

type Install struct {
	Exit      chan struct{}
	Source    config.Source
	Overrides config.Overrides
	Updater   Updater
}

func (i *Install) Execute(ctx context.Context) error {
	conf, err := config.New(i.Source, false, i.Overrides)
	if err != nil {
		return err
	}

	return i.Updater.Install(ctx, conf)
}

func (i *Install) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Run the PowerShell installer script for the requested version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				select {
				case <-i.Exit:
					cancel()
				case <-ctx.Done():
				}
			}()

			return i.Execute(ctx)
		},
	}
}
