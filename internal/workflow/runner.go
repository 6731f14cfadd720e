// Package workflow runs the fixed folder CRUD demonstration sequence,
// coordinating the Drive API client (model) and a View.
package workflow

import (
	"context"

	"github.com/d360-io/d360/pkg/d360"
)

// Step descriptions, reported to the View in order.
const (
	descList   = "fetching all folders"
	descCreate = "creating a new folder"
	descRename = "updating the folder title"
	descDelete = "deleting the folder"
)

// Runner executes the four-step workflow: list, create, rename, delete.
// Each step's outcome is forwarded to the View immediately; the first
// failure halts the run with no compensating actions on prior steps.
type Runner struct {
	model d360.Client
	view  View
}

// NewRunner creates a runner over the given model and view.
func NewRunner(model d360.Client, view View) *Runner {
	return &Runner{model: model, view: view}
}

// Run executes the sequence once. The created folder's server-assigned id is
// threaded verbatim into the rename and delete steps.
func (r *Runner) Run(ctx context.Context, title, newTitle string) error {
	folders := r.model.Folders()

	r.view.StepStarted(1, descList)

	existing, err := folders.List(ctx)
	if err != nil {
		r.view.StepFailed(1, descList, err)

		return err
	}

	r.view.FoldersListed(existing)

	r.view.StepStarted(2, descCreate)

	created, err := folders.Create(ctx, title)
	if err != nil {
		r.view.StepFailed(2, descCreate, err)

		return err
	}

	r.view.FolderCreated(created)

	r.view.StepStarted(3, descRename)

	renamed, err := folders.Rename(ctx, created.ID, newTitle)
	if err != nil {
		r.view.StepFailed(3, descRename, err)

		return err
	}

	r.view.FolderRenamed(renamed)

	r.view.StepStarted(4, descDelete)

	deleted, err := folders.Delete(ctx, created.ID)
	if err != nil {
		r.view.StepFailed(4, descDelete, err)

		return err
	}

	r.view.FolderDeleted(deleted)

	return nil
}
