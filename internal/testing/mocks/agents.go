package mocks

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/thand-io/superadmin/internal/models"
)

// AgentStore is an in-memory models.AgentStoreImpl. Lookups order matches
// by document id like the Firestore store does.
type AgentStore struct {
	mu sync.Mutex

	agents map[string]models.Agent

	// Injected failures, wrapped as store errors
	FindErr   error
	UpdateErr error

	FindCalls   int
	UpdateCalls int
	Updated     []string
	Closed      bool
}

func NewAgentStore(agents ...models.Agent) *AgentStore {
	store := &AgentStore{
		agents: make(map[string]models.Agent, len(agents)),
	}
	for _, agent := range agents {
		store.agents[agent.ID] = agent
	}
	return store
}

func (s *AgentStore) FindAgentByEmail(_ context.Context, email string) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FindCalls++

	if s.FindErr != nil {
		return nil, models.NewStoreError(models.StoreOpQuery, s.FindErr)
	}

	var matches []models.Agent
	for _, agent := range s.agents {
		if agent.Email == email {
			matches = append(matches, agent)
		}
	}

	if len(matches) == 0 {
		return nil, models.ErrAgentNotFound
	}

	slices.SortFunc(matches, func(a, b models.Agent) int {
		return strings.Compare(a.ID, b.ID)
	})

	found := matches[0]
	found.Matches = min(len(matches), 2)

	return &found, nil
}

func (s *AgentStore) SetSuperAdmin(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UpdateCalls++

	if s.UpdateErr != nil {
		return models.NewStoreError(models.StoreOpUpdate, s.UpdateErr)
	}

	agent, ok := s.agents[id]
	if !ok {
		return models.ErrAgentNotFound
	}

	agent.IsSuperAdmin = true
	s.agents[id] = agent
	s.Updated = append(s.Updated, id)

	return nil
}

func (s *AgentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Closed = true
	return nil
}

// Get returns the stored copy of an agent.
func (s *AgentStore) Get(id string) (models.Agent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agent, ok := s.agents[id]
	return agent, ok
}
