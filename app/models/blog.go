package models

import (
	"fmt"
	"slices"
)

// NewBlog returns an empty blog.
func NewBlog(name string) *Blog {
	return &Blog{Name: name}
}

// Validate checks if the blog meets all validation requirements
func (b *Blog) Validate() error {
	return validateStruct(b)
}

// AddPost validates the post and appends it to the blog.
func (b *Blog) AddPost(post *Post) error {
	if post == nil {
		return fmt.Errorf("%w: post cannot be nil", ErrInvalid)
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return err
	}
	b.Posts = append(b.Posts, post)
	return nil
}

// Find looks up a post or comment by permalink, depth first, posts before their replies.
func (b *Blog) Find(permalink string) (Entity, bool) {
	for _, p := range b.Posts {
		if p.Permalink == permalink {
			return p, true
		}
		if c, ok := findComment(p.Comments, permalink); ok {
			return c, true
		}
	}
	return nil, false
}

func findComment(comments []*Comment, permalink string) (*Comment, bool) {
	for _, c := range comments {
		if c.Permalink == permalink {
			return c, true
		}
		if found, ok := findComment(c.Comments, permalink); ok {
			return found, true
		}
	}
	return nil, false
}

// AppendComment attaches comment under the entity identified by parentPermalink.
// The blog is left untouched when any precondition fails.
func (b *Blog) AppendComment(parentPermalink string, comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("%w: comment cannot be nil", ErrInvalid)
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return err
	}
	parent, ok := b.Find(parentPermalink)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, parentPermalink)
	}
	if _, exists := b.Find(comment.Permalink); exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePermalink, comment.Permalink)
	}
	parent.AddChild(comment)
	return nil
}

// MarkDeleted soft-deletes the entity identified by permalink on behalf of user.
// Deleting an already deleted entity is a no-op.
func (b *Blog) MarkDeleted(permalink, user, timestamp string) error {
	entity, ok := b.Find(permalink)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, permalink)
	}
	if entity.GetAuthor() != user {
		return fmt.Errorf("%w: %s is not the author of %s", ErrAuthorMismatch, user, permalink)
	}
	entity.MarkDeleted(user, timestamp)
	return nil
}

// Walk visits every post and comment in display order. Posts have depth 0.
// Returning false from fn skips the entity's children.
func (b *Blog) Walk(fn func(e Entity, depth int) bool) {
	for _, p := range b.Posts {
		if fn(p, 0) {
			walkComments(p.Comments, 1, fn)
		}
	}
}

func walkComments(comments []*Comment, depth int, fn func(e Entity, depth int) bool) {
	for _, c := range comments {
		if fn(c, depth) {
			walkComments(c.Comments, depth+1, fn)
		}
	}
}

// Clone returns a deep copy of the blog.
func (b *Blog) Clone() *Blog {
	cp := &Blog{Name: b.Name}
	if b.Posts != nil {
		cp.Posts = make([]*Post, len(b.Posts))
		for i, p := range b.Posts {
			post := *p
			post.Tags = slices.Clone(p.Tags)
			post.Comments = cloneComments(p.Comments)
			cp.Posts[i] = &post
		}
	}
	return cp
}

// Filter returns a pruned copy of the blog holding the entities accepted by match
// together with their ancestors, so every match keeps its position in the tree.
func (b *Blog) Filter(match func(Entity) bool) *Blog {
	out := &Blog{Name: b.Name}
	for _, p := range b.Posts {
		kept := filterComments(p.Comments, match)
		if !match(p) && len(kept) == 0 {
			continue
		}
		post := *p
		post.Tags = slices.Clone(p.Tags)
		post.Comments = kept
		out.Posts = append(out.Posts, &post)
	}
	return out
}

func filterComments(comments []*Comment, match func(Entity) bool) []*Comment {
	var out []*Comment
	for _, c := range comments {
		kept := filterComments(c.Comments, match)
		if !match(c) && len(kept) == 0 {
			continue
		}
		cp := *c
		cp.Comments = kept
		out = append(out, &cp)
	}
	return out
}
