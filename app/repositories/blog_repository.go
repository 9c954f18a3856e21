package repositories

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"blogshell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository on an open database
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// OpenBadger opens (or creates) a Badger database at path. An empty path opens an
// in-memory database.
func OpenBadger(path string) (*BadgerBlogRepository, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	return NewBadgerBlogRepository(db), nil
}

// Get retrieves a blog by name
func (r *BadgerBlogRepository) Get(name string) (*models.Blog, error) {
	var blog *models.Blog

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			blog, err = decodeBlog(name, val)
			return err
		})
	})

	if err != nil {
		return nil, err
	}
	return blog, nil
}

// Put stores the whole blog document
func (r *BadgerBlogRepository) Put(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}
	data, err := marshalEntity(blog)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blogKey(blog.Name), data)
	})
}

// List returns every stored blog name
func (r *BadgerBlogRepository) List() ([]string, error) {
	var names []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, BlogKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Backup writes a full Badger backup stream to w
func (r *BadgerBlogRepository) Backup(w io.Writer) error {
	if _, err := r.db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}
	return nil
}

// Restore loads a stream produced by Backup
func (r *BadgerBlogRepository) Restore(rd io.Reader) error {
	if err := r.db.Load(rd, 4); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func (r *BadgerBlogRepository) Close() error {
	return r.db.Close()
}
