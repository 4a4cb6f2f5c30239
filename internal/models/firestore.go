package models

const (
	DefaultAgentsCollection  = "agents"
	DefaultDatabaseID        = "(default)"
	DefaultCredentialsFile   = "firebase-service-account.json"
	DefaultEmulatorProjectID = "demo-superadmin"
	FirestoreEmulatorHostEnv = "FIRESTORE_EMULATOR_HOST"
	GoogleCloudProjectEnv    = "GOOGLE_CLOUD_PROJECT"
)

// FirestoreConfig describes how to reach the document store holding the
// agents collection.
type FirestoreConfig struct {
	ProjectID  string `mapstructure:"project_id"`
	DatabaseID string `mapstructure:"database_id" default:"(default)"`
	Collection string `mapstructure:"collection" default:"agents"`

	// Credentials, first match wins: secret, inline JSON, file.
	// With none set Application Default Credentials are used.
	CredentialsSecret string `mapstructure:"credentials_secret"`
	CredentialsJSON   string `mapstructure:"credentials_json"`
	CredentialsFile   string `mapstructure:"credentials_file" default:"firebase-service-account.json"`

	// EmulatorHost points the client at a local Firestore emulator.
	EmulatorHost string `mapstructure:"emulator_host"`
}

func (c *FirestoreConfig) GetCollection() string {
	if c == nil || len(c.Collection) == 0 {
		return DefaultAgentsCollection
	}
	return c.Collection
}

func (c *FirestoreConfig) GetDatabaseID() string {
	if c == nil || len(c.DatabaseID) == 0 {
		return DefaultDatabaseID
	}
	return c.DatabaseID
}

func (c *FirestoreConfig) UsesEmulator() bool {
	return c != nil && len(c.EmulatorHost) > 0
}
