package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// validateStruct runs the struct tags of v and folds every field error onto one
// line wrapped by ErrInvalid.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := lo.Map([]validator.FieldError(fieldErrs), func(fe validator.FieldError, _ int) string {
			return fe.Error()
		})
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// Blog is a named, ordered collection of posts. It is loaded and stored as one document.
type Blog struct {
	Name  string  `json:"name" validate:"required"`
	Posts []*Post `json:"posts" validate:"-"`
}

// Post represents a blog post with its comment forest.
type Post struct {
	BlogName  string     `json:"blogName" validate:"required"`
	Author    string     `json:"userName"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Tags      []string   `json:"tags"`
	Timestamp string     `json:"timestamp" validate:"required"`
	Permalink string     `json:"permalink" validate:"required"`
	Deleted   bool       `json:"deleted"`
	DeletedBy string     `json:"deletedBy,omitempty"`
	DeletedAt string     `json:"deletedAt,omitempty"`
	Comments  []*Comment `json:"comments" validate:"-"`
}

// Comment represents a reply to a post or to another comment.
type Comment struct {
	Author    string     `json:"userName"`
	Body      string     `json:"body"`
	Timestamp string     `json:"timestamp" validate:"required"`
	Permalink string     `json:"permalink" validate:"required"`
	Deleted   bool       `json:"deleted"`
	DeletedBy string     `json:"deletedBy,omitempty"`
	DeletedAt string     `json:"deletedAt,omitempty"`
	Comments  []*Comment `json:"comments" validate:"-"`
}

// Entity is the behaviour shared by posts and comments.
type Entity interface {
	GetPermalink() string
	GetAuthor() string
	GetBody() string
	IsDeleted() bool
	MarkDeleted(user, timestamp string)
	Children() []*Comment
	AddChild(comment *Comment)
}

var (
	_ Entity = (*Post)(nil)
	_ Entity = (*Comment)(nil)
)
