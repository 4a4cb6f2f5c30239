package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thand-io/superadmin/internal/common"
	"github.com/thand-io/superadmin/internal/config"
	"github.com/thand-io/superadmin/internal/grant"
	"github.com/thand-io/superadmin/internal/models"
	"github.com/thand-io/superadmin/internal/store"
)

// openStore connects to the agents store. Tests swap it for an in-memory store.
var openStore = func(ctx context.Context, cfg *models.FirestoreConfig) (models.AgentStoreImpl, error) {
	agents, err := store.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// runGrant connects, prompts and grants. The store is closed on every path.
func runGrant(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	ctx, cleanup := common.WithInterrupt(cmd.Context())
	defer cleanup()

	// Registered first so it runs last, after the store has logged its close
	defer func() {
		if err := cfg.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close log output")
		}
	}()

	agents, err := openStore(ctx, cfg.GetFirestore())
	if err != nil {
		return reportFailure(err)
	}
	defer func() {
		if err := agents.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close store connection")
		}
	}()

	email, err := promptEmail(cmd.InOrStdin(), out)
	if err != nil {
		return reportFailure(err)
	}

	result, err := grant.Grant(ctx, agents, email)

	switch {
	case errors.Is(err, models.ErrEmptyEmail):
		fmt.Fprintln(out, errorStyle.Render("Email cannot be empty"))
		return reported(err)

	case errors.Is(err, models.ErrAgentNotFound):
		fmt.Fprintln(out, errorStyle.Render(
			fmt.Sprintf("User with email %s not found", common.NormalizeEmail(email))))
		return reported(err)

	case err != nil:
		return reportFailure(err)
	}

	fmt.Fprintln(out, successStyle.Render(
		fmt.Sprintf("User %s has been set as superadmin", result.Email)))
	fmt.Fprintf(out, "  Agent: %s\n", result.Agent.ID)

	if result.AlreadySuperAdmin {
		fmt.Fprintln(out, infoStyle.Render("  The agent was already a superadmin"))
	}

	if result.Agent.HasDuplicates() {
		fmt.Fprintln(out, warningStyle.Render(
			fmt.Sprintf("  Other agents share this email; only %s was updated", result.Agent.ID)))
	}

	return nil
}

func reportFailure(err error) error {
	logrus.WithError(err).Error("Failed to add superadmin")
	return reported(err)
}
