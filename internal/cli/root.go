package cli

import (
	"github.com/andsko/chorus/config"
	"github.com/andsko/chorus/internal/logging"
	"github.com/spf13/cobra"
)

var (
	credsFile string
	profile   string
	logLevel  string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chorus",
		Short: "Spotify Web API client",
		Long:  "chorus talks to the Spotify Web API: authorize applications and users, browse, and search.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if credsFile != "" {
				paths.Credentials = credsFile
			}
			level := logLevel
			if level == "" {
				level = "warn"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&credsFile, "credentials", "", "credentials file (default ~/.chorus/credentials.yaml)")
	cmd.PersistentFlags().StringVar(&profile, "profile", "", "credentials profile to use (default \"default\")")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newSearchCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
