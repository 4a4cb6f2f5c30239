package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/thand-io/superadmin/internal/models"
)

const EnvPrefix = "SUPERADMIN"

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	if err := setupViperConfig(v, configFile); err != nil {
		return nil, err
	}

	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if home, err := os.UserHomeDir(); err == nil && len(home) > 0 {
		v.AddConfigPath(filepath.Join(home, ".config", "superadmin"))
	}

	if len(configFile) > 0 {
		if _, err := os.Stat(configFile); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	return nil
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {

	// Firestore. The standard Google variables are honoured as fallbacks.
	v.BindEnv("firestore.project_id", "SUPERADMIN_FIRESTORE_PROJECT_ID", models.GoogleCloudProjectEnv)
	v.BindEnv("firestore.database_id", "SUPERADMIN_FIRESTORE_DATABASE_ID")
	v.BindEnv("firestore.collection", "SUPERADMIN_FIRESTORE_COLLECTION")
	v.BindEnv("firestore.credentials_file", "SUPERADMIN_FIRESTORE_CREDENTIALS_FILE")
	v.BindEnv("firestore.credentials_json", "SUPERADMIN_FIRESTORE_CREDENTIALS_JSON")
	v.BindEnv("firestore.credentials_secret", "SUPERADMIN_FIRESTORE_CREDENTIALS_SECRET")
	v.BindEnv("firestore.emulator_host", "SUPERADMIN_FIRESTORE_EMULATOR_HOST", models.FirestoreEmulatorHostEnv)

	bindLoggingEnvVars(v)
}

// bindLoggingEnvVars binds logging configuration environment variables
func bindLoggingEnvVars(v *viper.Viper) {
	v.BindEnv("logging.level", "SUPERADMIN_LOGGING_LEVEL")
	v.BindEnv("logging.format", "SUPERADMIN_LOGGING_FORMAT")
	v.BindEnv("logging.output", "SUPERADMIN_LOGGING_OUTPUT")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	output, err := openLogOutput(config.Logging.Output)
	if err != nil {
		return err
	}

	if file, ok := output.(*os.File); ok && file != os.Stderr && file != os.Stdout {
		config.logFile = file
	}

	logrus.SetLevel(logrusLevel)
	logrus.SetOutput(output)

	// Replace rather than add so repeated loads don't stack hooks
	config.logger = newRunLogger()
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.AddHook(config.logger)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	// Dump out the config settings if in debug mode
	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			logrus.Debugf("Config '%s': %v", key, redact(key, value))
		}
	}

	return nil
}

func openLogOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %w", output, err)
	}
	return file, nil
}

// redact hides inline credentials from the debug dump
func redact(key string, value any) any {
	settings, ok := value.(map[string]any)
	if !ok || key != "firestore" {
		return value
	}

	redacted := make(map[string]any, len(settings))
	for name, setting := range settings {
		if name == "credentials_json" {
			if s, ok := setting.(string); ok && len(s) > 0 {
				setting = "<redacted>"
			}
		}
		redacted[name] = setting
	}
	return redacted
}

func setDefaults(v *viper.Viper) {

	// Firestore defaults
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.database_id", models.DefaultDatabaseID)
	v.SetDefault("firestore.collection", models.DefaultAgentsCollection)
	v.SetDefault("firestore.credentials_file", models.DefaultCredentialsFile)
	v.SetDefault("firestore.credentials_json", "")
	v.SetDefault("firestore.credentials_secret", "")
	v.SetDefault("firestore.emulator_host", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}
