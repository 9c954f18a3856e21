package mock

import (
	"slices"
	"sync"

	"blogshell/app/models"
	"blogshell/app/repositories"
)

// BlogRepository is an in-memory repositories.BlogRepository that counts writes
// and can be told to fail.
type BlogRepository struct {
	blogs    map[string]*models.Blog
	mutex    sync.RWMutex
	PutCalls int
	GetErr   error
	PutErr   error
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{
		blogs: make(map[string]*models.Blog),
	}
}

func (m *BlogRepository) Get(name string) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	blog, exists := m.blogs[name]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return blog.Clone(), nil
}

func (m *BlogRepository) Put(blog *models.Blog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.blogs[blog.Name] = blog.Clone()
	return nil
}

func (m *BlogRepository) List() ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var names []string
	for name := range m.blogs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (m *BlogRepository) Close() error {
	return nil
}

var _ repositories.BlogRepository = (*BlogRepository)(nil)
