package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_FromLdflags(t *testing.T) {
	previousVersion, previousCommit := Version, GitCommit
	t.Cleanup(func() {
		Version, GitCommit = previousVersion, previousCommit
	})

	Version = "v1.2.3"
	GitCommit = "0123456789abcdef"
	assert.Equal(t, "v1.2.3 (git: 01234567)", GetVersion())

	GitCommit = "abc"
	assert.Equal(t, "v1.2.3 (git: abc)", GetVersion())

	GitCommit = "unknown"
	assert.Equal(t, "v1.2.3", GetVersion())
}
