package repositories

import (
	"io"

	"blogshell/app/models"
)

// BlogRepository defines the interface for blog document access.
// Blogs are always read and written as a whole.
type BlogRepository interface {
	// Get returns ErrNotFound when no blog with that name was ever stored.
	Get(name string) (*models.Blog, error)
	// Put creates or replaces the stored blog (last writer wins).
	Put(blog *models.Blog) error
	// List returns the stored blog names in ascending order.
	List() ([]string, error)
	Close() error
}

// Backuper is implemented by repositories that can dump and reload their contents.
type Backuper interface {
	Backup(w io.Writer) error
	Restore(r io.Reader) error
}
