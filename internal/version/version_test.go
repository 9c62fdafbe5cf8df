package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringInjected(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.0"
	assert.Equal(t, "v1.2.0 (commit: unknown, built: unknown)", String())
}

func TestStringContainsCommit(t *testing.T) {
	assert.Contains(t, String(), "commit: "+Commit)
}
