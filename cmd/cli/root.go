package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thand-io/superadmin/internal/common"
	"github.com/thand-io/superadmin/internal/config"
	"github.com/thand-io/superadmin/internal/grant"
)

// reportedError marks a failure that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func reported(err error) error {
	return &reportedError{err: err}
}

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return cfg, nil
}

// NewRootCommand builds the superadmin command tree.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "superadmin",
		Short: "Grant the superadmin role to an agent",
		Long: `Grant the superadmin role to an agent.

Prompts for an email, finds the agent with that email in the agents
collection and sets isSuperAdmin on it. Only the first match is updated.

Credentials are read from firebase-service-account.json in the working
directory unless configured otherwise in config.yaml or the environment
(SUPERADMIN_FIRESTORE_*).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cmd)
			if err != nil {
				logrus.WithError(err).Error("Failed to load configuration")
				return reported(err)
			}

			logrus.WithField("version", common.GetVersion()).Debug("Starting superadmin")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGrant(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./config.yaml or $HOME/.config/superadmin/config.yaml)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := NewRootCommand().Execute()

	var alreadyReported *reportedError
	if err != nil && !errors.As(err, &alreadyReported) {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}

	return grant.ExitCode(err)
}
