package cmd

import (
	"github.com/MyelinBots/heartbeat-go/config"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

var version = "x.x.x"

type rootOptions struct {
	configFile string
	verbose    bool
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "heartbeat",
		Short:         "Record a heartbeat on a fixed interval",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetHandler(cli.New(cmd.ErrOrStderr()))
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", config.DefaultFile, "config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRunCommand(opts),
		newMigrateCommand(opts),
		newTickCommand(),
		newVersionCommand(),
	)
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	return config.LoadConfig(o.configFile)
}

func Execute() error {
	return NewRootCommand().Execute()
}
