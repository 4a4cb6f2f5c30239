package store

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/thand-io/superadmin/internal/models"
)

// ClientConfig is everything needed to open a Firestore client.
type ClientConfig struct {
	ProjectID     string
	DatabaseID    string
	ClientOptions []option.ClientOption
}

// CreateClientConfig resolves the project and credentials for the store.
func CreateClientConfig(ctx context.Context, cfg *models.FirestoreConfig) (*ClientConfig, error) {
	if cfg == nil {
		return nil, fmt.Errorf("firestore config is required")
	}

	var clientOptions []option.ClientOption

	projectID := cfg.ProjectID
	if len(projectID) == 0 {
		// Read project_id from the credentials
		projectID = firestore.DetectProjectID
	}

	if cfg.UsesEmulator() {

		logrus.WithField("host", cfg.EmulatorHost).Info("Using Firestore emulator")

		// The client only honours the emulator through the environment
		if err := os.Setenv(models.FirestoreEmulatorHostEnv, cfg.EmulatorHost); err != nil {
			return nil, fmt.Errorf("failed to set emulator host: %w", err)
		}

		// There are no credentials to detect a project from
		if projectID == firestore.DetectProjectID {
			projectID = models.DefaultEmulatorProjectID
		}

	} else if len(cfg.CredentialsSecret) > 0 {

		logrus.WithField("secret", cfg.CredentialsSecret).Info("Using service account credentials from Secret Manager")

		credentialsJSON, err := fetchSecretCredentials(ctx, cfg.CredentialsSecret)
		if err != nil {
			return nil, err
		}
		clientOptions = append(clientOptions, option.WithCredentialsJSON(credentialsJSON))

	} else if len(cfg.CredentialsJSON) > 0 {

		logrus.Info("Using service account credentials from config")
		clientOptions = append(clientOptions, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))

	} else if len(cfg.CredentialsFile) > 0 {

		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("failed to read credentials file %s: %w", cfg.CredentialsFile, err)
		}

		logrus.WithField("file", cfg.CredentialsFile).Info("Using service account key file")
		clientOptions = append(clientOptions, option.WithCredentialsFile(cfg.CredentialsFile))

	} else {
		logrus.Info("No credentials provided, using Application Default Credentials (ADC)")
	}

	return &ClientConfig{
		ProjectID:     projectID,
		DatabaseID:    cfg.GetDatabaseID(),
		ClientOptions: clientOptions,
	}, nil
}
