package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"blogshell/app/models"
	"blogshell/app/repositories"
	"blogshell/app/views"
)

// BlogService executes blog commands. Every command loads the whole blog, applies
// itself and, for mutations, stores the blog back. Commands are serialized.
type BlogService struct {
	repo   repositories.BlogRepository
	logger *slog.Logger
	mutex  sync.Mutex
}

// NewBlogService creates a new BlogService
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{
		repo:   repo,
		logger: slog.Default(),
	}
}

// WithLogger replaces the service logger
func (s *BlogService) WithLogger(logger *slog.Logger) *BlogService {
	s.logger = logger
	return s
}

// load returns the stored blog or a fresh empty one when it was never created
func (s *BlogService) load(name string) (*models.Blog, error) {
	blog, err := s.repo.Get(name)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.NewBlog(name), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blog %s: %w", name, err)
	}
	return blog, nil
}

func (s *BlogService) save(blog *models.Blog) error {
	if err := s.repo.Put(blog); err != nil {
		return fmt.Errorf("failed to save blog %s: %w", blog.Name, err)
	}
	return nil
}

// Post adds a new post to blogName, creating the blog on first use
func (s *BlogService) Post(blogName, userName, title, body, tagsCSV, timestamp string) (*models.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	blog, err := s.load(blogName)
	if err != nil {
		return nil, err
	}

	post := models.NewPost(blogName, userName, title, body, tagsCSV, timestamp)
	if err := blog.AddPost(post); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	if err := s.save(blog); err != nil {
		return nil, err
	}

	s.logger.Debug("post created", "blog", blogName, "permalink", post.Permalink, "user", userName)
	return post, nil
}

// Comment attaches a comment under the post or comment identified by parentPermalink
func (s *BlogService) Comment(blogName, parentPermalink, userName, body, timestamp string) (*models.Comment, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	blog, err := s.load(blogName)
	if err != nil {
		return nil, err
	}

	comment := models.NewComment(userName, body, timestamp)
	if err := blog.AppendComment(parentPermalink, comment); err != nil {
		return nil, err
	}
	if err := s.save(blog); err != nil {
		return nil, err
	}

	s.logger.Debug("comment created", "blog", blogName, "parent", parentPermalink, "permalink", comment.Permalink)
	return comment, nil
}

// Delete soft-deletes the post or comment identified by permalink
func (s *BlogService) Delete(blogName, permalink, userName, timestamp string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	blog, err := s.load(blogName)
	if err != nil {
		return err
	}

	if err := blog.MarkDeleted(permalink, userName, timestamp); err != nil {
		return err
	}
	if err := s.save(blog); err != nil {
		return err
	}

	s.logger.Debug("entry deleted", "blog", blogName, "permalink", permalink, "user", userName)
	return nil
}

// Blog returns the current state of blogName. A never created blog is empty.
func (s *BlogService) Blog(blogName string) (*models.Blog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.load(blogName)
}

// Blogs lists the names of every stored blog
func (s *BlogService) Blogs() ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.repo.List()
}

// Show renders the whole blog
func (s *BlogService) Show(blogName string) (string, error) {
	blog, err := s.Blog(blogName)
	if err != nil {
		return "", err
	}
	return views.RenderString(blog), nil
}

// Search returns the part of blogName whose live content contains search,
// together with the ancestors of every match.
func (s *BlogService) Search(blogName, search string) (*models.Blog, error) {
	blog, err := s.Blog(blogName)
	if err != nil {
		return nil, err
	}
	return blog.Filter(Matcher(search)), nil
}

// Find renders the search result of search in blogName
func (s *BlogService) Find(blogName, search string) (string, error) {
	result, err := s.Search(blogName, search)
	if err != nil {
		return "", err
	}
	return views.RenderString(result), nil
}

// Matcher returns a case-sensitive substring predicate over the visible content
// of posts (title, body, tags) and comments (body). Deleted entities never match.
func Matcher(search string) func(models.Entity) bool {
	return func(e models.Entity) bool {
		if e.IsDeleted() {
			return false
		}
		if strings.Contains(e.GetBody(), search) {
			return true
		}
		if p, ok := e.(*models.Post); ok {
			return strings.Contains(p.Title, search) || p.HasTag(search)
		}
		return false
	}
}
