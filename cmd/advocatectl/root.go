package main

import (
	"os"

	"advocate-directory/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL string
	verbose bool
	cfg     *config.Config
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "advocatectl",
		Short:         "Browse and search the advocate directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if opts.baseURL == "" {
				opts.baseURL = cfg.Client.BaseURL
			}
			opts.cfg = cfg
			opts.log = newLogger(opts.verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "directory service URL (defaults to CLIENT_BASE_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newSearchCmd(opts),
		newBrowseCmd(opts),
		newSeedCmd(opts),
	)
	return cmd
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
