package config

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const LoggerAttributeRunID = "run_id"

// runLogger tags every log entry with the id of the current run so entries
// from one grant can be correlated in a shared log sink.
type runLogger struct {
	runID uuid.UUID
}

func newRunLogger() *runLogger {
	return &runLogger{
		runID: uuid.New(),
	}
}

func (r *runLogger) Fire(entry *logrus.Entry) error {
	if _, exists := entry.Data[LoggerAttributeRunID]; !exists {
		entry.Data[LoggerAttributeRunID] = r.runID.String()
	}
	return nil
}

func (r *runLogger) Levels() []logrus.Level {
	return logrus.AllLevels
}
