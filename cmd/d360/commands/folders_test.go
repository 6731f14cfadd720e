package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFoldersCommand(t *testing.T) {
	cmd := NewFoldersCommand()
	assert.Equal(t, "folders", cmd.Use)
	assert.Equal(t, []string{"folder"}, cmd.Aliases)
	assert.Equal(t, "Manage drive folders", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 4)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "rename")
	assert.Contains(t, commandNames, "delete")
}

func TestFoldersListCommand(t *testing.T) {
	cmd := newFoldersListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, "List folders", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestFoldersCreateCommand(t *testing.T) {
	cmd := newFoldersCreateCommand()
	assert.Equal(t, "create", cmd.Use)
	assert.Equal(t, "Create a folder", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	titleFlag := cmd.Flags().Lookup("title")
	assert.NotNil(t, titleFlag)
	assert.Equal(t, "n", titleFlag.Shorthand)
}

func TestFoldersRenameCommand(t *testing.T) {
	cmd := newFoldersRenameCommand()
	assert.Equal(t, "rename FOLDER_ID", cmd.Use)
	assert.Equal(t, "Rename a folder", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	titleFlag := cmd.Flags().Lookup("title")
	assert.NotNil(t, titleFlag)
}

func TestFoldersDeleteCommand(t *testing.T) {
	cmd := newFoldersDeleteCommand()
	assert.Equal(t, "delete FOLDER_ID", cmd.Use)
	assert.Equal(t, "Delete a folder", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	// Check force flag
	forceFlag := cmd.Flags().Lookup("force")
	assert.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}
