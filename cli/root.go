// Package cli implements launcherctl, a command line client for the launcher
// settings.
package cli

import (
	"github.com/flow-hydraulics/launcher-settings/api"
	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/flow-hydraulics/launcher-settings/state"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	envFile string
	output  string
	acc     api.Accessor
}

// NewRootCmd builds the command tree. A nil accessor selects the
// process-wide state, configured from the environment.
func NewRootCmd(acc api.Accessor) *cobra.Command {
	opts := &options{acc: acc}

	cmd := &cobra.Command{
		Use:   "launcherctl",
		Short: "Inspect and edit launcher settings",
		Long: `launcherctl reads and replaces the launcher settings record.

It opens the same settings store as the launcher, selected through the
LAUNCHER_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.acc != nil {
				return nil
			}

			cfg, err := configs.ParseConfig(&configs.Options{EnvFilePath: opts.envFile})
			if err != nil {
				return err
			}

			configs.ConfigureLogger(cfg.LogLevel)
			log.SetOutput(cmd.ErrOrStderr())

			state.Configure(cfg)
			opts.acc = state.Global()

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "envfile", "", "file of environment variables to load")

	cmd.AddCommand(
		newSettingsCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// Execute runs launcherctl against the process-wide state.
func Execute() error {
	return NewRootCmd(nil).Execute()
}

func (o *options) service() *api.Settings {
	return api.NewSettings(o.acc)
}
