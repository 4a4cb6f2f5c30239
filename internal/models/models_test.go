package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirestoreConfig_Defaults(t *testing.T) {
	var empty *FirestoreConfig
	assert.Equal(t, DefaultAgentsCollection, empty.GetCollection())
	assert.Equal(t, DefaultDatabaseID, empty.GetDatabaseID())
	assert.False(t, empty.UsesEmulator())

	cfg := &FirestoreConfig{
		Collection:   "operators",
		DatabaseID:   "staff",
		EmulatorHost: "localhost:8080",
	}
	assert.Equal(t, "operators", cfg.GetCollection())
	assert.Equal(t, "staff", cfg.GetDatabaseID())
	assert.True(t, cfg.UsesEmulator())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("unauthenticated")
	err := fmt.Errorf("failed to find agent: %w", NewStoreError(StoreOpQuery, cause))

	assert.True(t, IsStoreError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store query failed: unauthenticated")

	assert.False(t, IsStoreError(ErrAgentNotFound))
	assert.False(t, IsStoreError(nil))
}

func TestAgent_HasDuplicates(t *testing.T) {
	assert.False(t, (&Agent{Matches: 1}).HasDuplicates())
	assert.True(t, (&Agent{Matches: 2}).HasDuplicates())
}
