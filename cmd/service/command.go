package service

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/learnkeep/learnkeep/app/core"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "learning resource service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	serve(app)

	return nil
}

// NewInstallCommand returns the command that applies the database
// migrations and exits.
func NewInstallCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "initialize database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			if err := app.Install(); err != nil {
				return err
			}
			fmt.Println("database tables ready")
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}
