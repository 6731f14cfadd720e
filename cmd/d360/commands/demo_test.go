package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDemoCommand(t *testing.T) {
	cmd := NewDemoCommand()
	assert.Equal(t, "demo", cmd.Use)
	assert.Equal(t, "Run the folder CRUD workflow", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("title"))
	assert.NotNil(t, cmd.Flags().Lookup("new-title"))
}

func TestRandomSuffix(t *testing.T) {
	first := randomSuffix()
	second := randomSuffix()

	assert.Len(t, first, 8)
	assert.Len(t, second, 8)
	assert.NotEqual(t, first, second)
}
