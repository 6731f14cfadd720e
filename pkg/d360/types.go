package d360

// Folder represents a drive folder.
type Folder struct {
	ID    string `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// DeleteResult represents the outcome of a folder deletion.
type DeleteResult struct {
	Deleted bool   `json:"deleted" yaml:"deleted"`
	ID      string `json:"id"      yaml:"id"`
}

// FolderCreateRequest is the request body for creating a folder.
type FolderCreateRequest struct {
	Title string `json:"title"`
}

// FolderRenameRequest is the request body for renaming a folder.
type FolderRenameRequest struct {
	Title string `json:"title"`
}
