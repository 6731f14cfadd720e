package workflow

import (
	"errors"
	"fmt"
	"io"

	"github.com/d360-io/d360/pkg/d360"
	"github.com/fatih/color"
)

// View receives the outcome of each workflow step. It holds no state and has
// no side effects beyond rendering.
type View interface {
	StepStarted(step int, description string)
	FoldersListed(folders []d360.Folder)
	FolderCreated(folder *d360.Folder)
	FolderRenamed(folder *d360.Folder)
	FolderDeleted(result *d360.DeleteResult)
	StepFailed(step int, description string, err error)
}

// ConsoleView renders workflow outcomes as human-readable console lines.
type ConsoleView struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

// NewConsoleView creates a view writing to out.
func NewConsoleView(out io.Writer, noColor bool) *ConsoleView {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	if noColor {
		success.DisableColor()
		failure.DisableColor()
	}

	return &ConsoleView{out: out, success: success, failure: failure}
}

// StepStarted implements View.StepStarted.
func (v *ConsoleView) StepStarted(step int, description string) {
	_, _ = fmt.Fprintf(v.out, "Task %d: %s\n", step, description)
}

// FoldersListed implements View.FoldersListed.
func (v *ConsoleView) FoldersListed(folders []d360.Folder) {
	_, _ = v.success.Fprintf(v.out, "Success: found %d folders\n", len(folders))

	for _, folder := range folders {
		_, _ = fmt.Fprintf(v.out, "  - %s (%s)\n", folder.Title, folder.ID)
	}
}

// FolderCreated implements View.FolderCreated.
func (v *ConsoleView) FolderCreated(folder *d360.Folder) {
	_, _ = v.success.Fprintf(v.out, "Success: folder '%s' created with ID: %s\n", folder.Title, folder.ID)
}

// FolderRenamed implements View.FolderRenamed.
func (v *ConsoleView) FolderRenamed(folder *d360.Folder) {
	_, _ = v.success.Fprintf(v.out, "Success: folder ID %s renamed to '%s'\n", folder.ID, folder.Title)
}

// FolderDeleted implements View.FolderDeleted.
func (v *ConsoleView) FolderDeleted(result *d360.DeleteResult) {
	_, _ = v.success.Fprintf(v.out, "Success: folder ID %s deleted\n", result.ID)
}

// StepFailed implements View.StepFailed.
func (v *ConsoleView) StepFailed(step int, description string, err error) {
	_, _ = v.failure.Fprintf(v.out, "Error: %s failed: %v\n", description, err)

	apiErr := &d360.APIError{}
	if errors.As(err, &apiErr) {
		_, _ = fmt.Fprintf(v.out, "  Status: %d\n", apiErr.StatusCode)
	}
}
