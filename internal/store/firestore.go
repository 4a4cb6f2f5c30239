package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/thand-io/superadmin/internal/models"
)

const (
	emailField      = "email"
	superAdminField = "isSuperAdmin"

	// One more than we use so duplicates can be reported.
	lookupLimit = 2
)

// Store is a Firestore backed models.AgentStoreImpl.
type Store struct {
	client     *firestore.Client
	collection string
}

// New opens a Firestore client. Callers own the returned store and must
// Close it.
func New(ctx context.Context, cfg *models.FirestoreConfig) (*Store, error) {

	clientConfig, err := CreateClientConfig(ctx, cfg)
	if err != nil {
		return nil, models.NewStoreError(models.StoreOpConnect, err)
	}

	logrus.WithFields(logrus.Fields{
		"project":    clientConfig.ProjectID,
		"database":   clientConfig.DatabaseID,
		"collection": cfg.GetCollection(),
	}).Debug("Connecting to Firestore")

	client, err := firestore.NewClientWithDatabase(
		ctx,
		clientConfig.ProjectID,
		clientConfig.DatabaseID,
		clientConfig.ClientOptions...,
	)
	if err != nil {
		return nil, models.NewStoreError(models.StoreOpConnect,
			fmt.Errorf("failed to create Firestore client: %w", err))
	}

	return NewWithClient(client, cfg.GetCollection()), nil
}

func NewWithClient(client *firestore.Client, collection string) *Store {
	if len(collection) == 0 {
		collection = models.DefaultAgentsCollection
	}
	return &Store{
		client:     client,
		collection: collection,
	}
}

// FindAgentByEmail returns the first agent, ordered by document id, whose
// email equals the argument.
func (s *Store) FindAgentByEmail(ctx context.Context, email string) (*models.Agent, error) {

	iter := s.client.Collection(s.collection).
		Where(emailField, "==", email).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(lookupLimit).
		Documents(ctx)
	defer iter.Stop()

	var found *models.Agent

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, models.NewStoreError(models.StoreOpQuery, err)
		}

		if found == nil {
			found = agentFromSnapshot(doc)
		}
		found.Matches++
	}

	if found == nil {
		return nil, models.ErrAgentNotFound
	}

	return found, nil
}

// SetSuperAdmin applies a partial update; other fields are preserved.
func (s *Store) SetSuperAdmin(ctx context.Context, id string) error {

	_, err := s.client.Collection(s.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: superAdminField, Value: true},
	})

	if status.Code(err) == codes.NotFound {
		// Removed between the lookup and the update
		return models.ErrAgentNotFound
	} else if err != nil {
		return models.NewStoreError(models.StoreOpUpdate, err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// agentFromSnapshot reads the mapped fields leniently. Documents written by
// other tools may carry the flag with another type, which reads as false.
func agentFromSnapshot(doc *firestore.DocumentSnapshot) *models.Agent {
	data := doc.Data()

	email, _ := data[emailField].(string)
	isSuperAdmin, _ := data[superAdminField].(bool)

	return &models.Agent{
		ID:           doc.Ref.ID,
		Email:        email,
		IsSuperAdmin: isSuperAdmin,
	}
}
