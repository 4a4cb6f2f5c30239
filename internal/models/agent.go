package models

import "context"

// Agent is a record in the agents collection. Only the fields this tool
// reads or writes are mapped; everything else on the document is left alone.
type Agent struct {
	ID           string `firestore:"-" json:"id,omitempty"`
	Email        string `firestore:"email" json:"email"`
	IsSuperAdmin bool   `firestore:"isSuperAdmin" json:"isSuperAdmin"`

	// Matches is how many documents the lookup saw for the email, capped
	// by the lookup limit. Not persisted.
	Matches int `firestore:"-" json:"-"`
}

func (a *Agent) HasDuplicates() bool {
	return a.Matches > 1
}

// AgentStoreImpl is the slice of the document store the grant needs.
type AgentStoreImpl interface {
	// FindAgentByEmail returns the first agent whose email equals the
	// argument, or ErrAgentNotFound.
	FindAgentByEmail(ctx context.Context, email string) (*Agent, error)
	// SetSuperAdmin sets isSuperAdmin to true on the agent with the given
	// document id without touching any other field.
	SetSuperAdmin(ctx context.Context, id string) error
	Close() error
}
