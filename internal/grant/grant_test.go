package grant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thand-io/superadmin/internal/models"
	"github.com/thand-io/superadmin/internal/testing/mocks"
)

func TestGrant_SetsSuperAdmin(t *testing.T) {
	store := mocks.NewAgentStore(
		models.Agent{ID: "doc1", Email: "alice@example.com"},
		models.Agent{ID: "doc2", Email: "bob@example.com"},
	)

	result, err := Grant(context.Background(), store, "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, "doc1", result.Agent.ID)
	assert.True(t, result.Agent.IsSuperAdmin)
	assert.False(t, result.AlreadySuperAdmin)
	assert.Equal(t, []string{"doc1"}, store.Updated)

	alice, _ := store.Get("doc1")
	assert.True(t, alice.IsSuperAdmin)

	bob, _ := store.Get("doc2")
	assert.False(t, bob.IsSuperAdmin, "other agents must not be touched")
}

func TestGrant_TrimsEmail(t *testing.T) {
	store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})

	result, err := Grant(context.Background(), store, "  alice@example.com\r\n")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, []string{"doc1"}, store.Updated)
}

func TestGrant_EmptyEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"newline only", "\n"},
		{"tabs and newline", "\t \r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})

			result, err := Grant(context.Background(), store, tt.input)
			assert.ErrorIs(t, err, models.ErrEmptyEmail)
			assert.Nil(t, result)
			assert.Zero(t, store.FindCalls, "no query should be issued")
			assert.Zero(t, store.UpdateCalls)
			assert.Equal(t, ExitFailure, ExitCode(err))
		})
	}
}

func TestGrant_NotFound(t *testing.T) {
	store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})

	result, err := Grant(context.Background(), store, "carol@example.com")
	assert.ErrorIs(t, err, models.ErrAgentNotFound)
	assert.Nil(t, result)
	assert.Equal(t, 1, store.FindCalls)
	assert.Zero(t, store.UpdateCalls, "no update should be issued")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestGrant_Idempotent(t *testing.T) {
	store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})

	first, err := Grant(context.Background(), store, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, first.AlreadySuperAdmin)

	second, err := Grant(context.Background(), store, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, second.AlreadySuperAdmin)
	assert.True(t, second.Agent.IsSuperAdmin)
	assert.Equal(t, ExitSuccess, ExitCode(err))

	alice, _ := store.Get("doc1")
	assert.True(t, alice.IsSuperAdmin)
}

func TestGrant_DuplicatesUpdateOnlyFirst(t *testing.T) {
	store := mocks.NewAgentStore(
		models.Agent{ID: "doc9", Email: "dup@example.com"},
		models.Agent{ID: "doc3", Email: "dup@example.com"},
	)

	result, err := Grant(context.Background(), store, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "doc3", result.Agent.ID)
	assert.True(t, result.Agent.HasDuplicates())
	assert.Equal(t, []string{"doc3"}, store.Updated)

	other, _ := store.Get("doc9")
	assert.False(t, other.IsSuperAdmin)
}

func TestGrant_StoreErrors(t *testing.T) {
	networkErr := errors.New("connection reset")

	t.Run("query", func(t *testing.T) {
		store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})
		store.FindErr = networkErr

		_, err := Grant(context.Background(), store, "alice@example.com")
		require.Error(t, err)

		var storeErr *models.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, models.StoreOpQuery, storeErr.Op)
		assert.ErrorIs(t, err, networkErr)
		assert.Zero(t, store.UpdateCalls)
	})

	t.Run("update", func(t *testing.T) {
		store := mocks.NewAgentStore(models.Agent{ID: "doc1", Email: "alice@example.com"})
		store.UpdateErr = networkErr

		_, err := Grant(context.Background(), store, "alice@example.com")
		require.Error(t, err)
		assert.True(t, models.IsStoreError(err))
		assert.ErrorIs(t, err, networkErr)
		assert.Equal(t, ExitFailure, ExitCode(err))

		alice, _ := store.Get("doc1")
		assert.False(t, alice.IsSuperAdmin)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(models.ErrEmptyEmail))
	assert.Equal(t, ExitFailure, ExitCode(models.NewStoreError(models.StoreOpConnect, errors.New("boom"))))
}
