package grant

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/thand-io/superadmin/internal/common"
	"github.com/thand-io/superadmin/internal/models"
)

// Process exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Result describes a successful grant.
type Result struct {
	Email string
	Agent *models.Agent

	// AlreadySuperAdmin is true when the flag was set before this run.
	// The update is applied regardless.
	AlreadySuperAdmin bool
}

// Grant sets isSuperAdmin on the first agent whose email equals the trimmed
// input. An empty email never reaches the store. When several agents share
// the email only the first returned by the store is updated.
func Grant(ctx context.Context, store models.AgentStoreImpl, email string) (*Result, error) {

	email = common.NormalizeEmail(email)
	if len(email) == 0 {
		return nil, models.ErrEmptyEmail
	}

	logger := logrus.WithField("email", email)
	logger.Debug("Looking up agent")

	agent, err := store.FindAgentByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find agent %s: %w", email, err)
	}

	logger = logger.WithField("agent_id", agent.ID)

	if agent.HasDuplicates() {
		logger.Warn("Multiple agents share this email, only the first by document id is updated")
	}

	if agent.IsSuperAdmin {
		logger.Info("Agent is already a superadmin")
	}

	if err := store.SetSuperAdmin(ctx, agent.ID); err != nil {
		return nil, fmt.Errorf("failed to update agent %s: %w", agent.ID, err)
	}

	logger.Info("Granted superadmin")

	result := &Result{
		Email:             email,
		Agent:             agent,
		AlreadySuperAdmin: agent.IsSuperAdmin,
	}
	agent.IsSuperAdmin = true

	return result, nil
}

// ExitCode maps the outcome of a run to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return ExitFailure
	}
	return ExitSuccess
}
