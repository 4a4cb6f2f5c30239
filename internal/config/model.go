package config

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/thand-io/superadmin/internal/models"
)

// Config represents the application configuration structure
type Config struct {

	// Document store holding the agents collection
	Firestore models.FirestoreConfig `mapstructure:"firestore"`

	Logging LoggingConfig `mapstructure:"logging"`

	logger  *runLogger
	logFile *os.File
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"text"`
	Output string `mapstructure:"output" default:"stderr"`
}

func (c *Config) GetFirestore() *models.FirestoreConfig {
	return &c.Firestore
}

// GetRunID identifies this invocation in the logs.
func (c *Config) GetRunID() string {
	if c.logger == nil {
		return ""
	}
	return c.logger.runID.String()
}

// Close releases the log file opened for logging.output, if any, and points
// logrus back at stderr. Safe to call more than once.
func (c *Config) Close() error {
	if c == nil || c.logFile == nil {
		return nil
	}

	logrus.SetOutput(os.Stderr)

	err := c.logFile.Close()
	c.logFile = nil

	return err
}
