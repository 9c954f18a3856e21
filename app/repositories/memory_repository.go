package repositories

import (
	"io"
	"slices"
	"sync"

	"blogshell/app/models"

	"github.com/samber/lo"
)

// MemoryBlogRepository keeps blogs in process memory. Blogs are copied on the way
// in and out so callers never share a tree with the store.
type MemoryBlogRepository struct {
	blogs map[string]*models.Blog
	mutex sync.RWMutex
}

func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{
		blogs: make(map[string]*models.Blog),
	}
}

func (m *MemoryBlogRepository) Get(name string) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blog, exists := m.blogs[name]
	if !exists {
		return nil, ErrNotFound
	}
	return blog.Clone(), nil
}

func (m *MemoryBlogRepository) Put(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blogs[blog.Name] = blog.Clone()
	return nil
}

func (m *MemoryBlogRepository) List() ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := lo.Keys(m.blogs)
	slices.Sort(names)
	return names, nil
}

func (m *MemoryBlogRepository) Backup(w io.Writer) error {
	return exportBlogs(m, w)
}

func (m *MemoryBlogRepository) Restore(r io.Reader) error {
	return importBlogs(m, r)
}

func (m *MemoryBlogRepository) Close() error {
	return nil
}
