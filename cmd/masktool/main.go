// Command masktool runs the mask pipelines on synthetic scenes and reports
// timing and summary statistics.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"objmask/pkg/config"
)

type options struct {
	configPath string
	cfg        *config.Config
	log        *logrus.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "masktool",
		Short:         "Exercise object mask scaling and spatial separation on synthetic scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
	}
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "masktool.yaml", "YAML configuration file; defaults are used if it does not exist")

	cmd.AddCommand(newScaleCommand(o))
	cmd.AddCommand(newSeparateCommand(o))
	cmd.AddCommand(newInitConfigCommand(o))
	return cmd
}

func (o *options) load() error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = log
	return nil
}

func newInitConfigCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfigFile(o.configPath); err != nil {
				return err
			}
			o.log.WithField("path", o.configPath).Info("wrote default configuration")
			return nil
		},
	}
}
