package store

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// fetchSecretCredentials reads a service account key stored in Secret
// Manager. The secret manager client itself authenticates with ADC.
func fetchSecretCredentials(ctx context.Context, name string) ([]byte, error) {

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretVersionName(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access secret %s: %w", name, err)
	}

	data := resp.GetPayload().GetData()
	if len(data) == 0 {
		return nil, fmt.Errorf("secret %s is empty", name)
	}

	return data, nil
}

// secretVersionName pins a secret resource name to its latest version
// unless a version is already given.
func secretVersionName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), "/")
	if strings.Contains(name, "/versions/") {
		return name
	}
	return name + "/versions/latest"
}
