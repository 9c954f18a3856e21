package models

import (
	"strings"

	"github.com/samber/lo"
)

// NewPost builds a post for blogName and derives its permalink.
func NewPost(blogName, author, title, body, tagsCSV, timestamp string) *Post {
	p := &Post{
		BlogName:  blogName,
		Author:    author,
		Title:     title,
		Body:      body,
		Tags:      ParseTags(tagsCSV),
		Timestamp: timestamp,
	}
	p.BeforeCreate()
	return p
}

// ParseTags splits a comma separated tag list. An empty list yields nil.
func ParseTags(csv string) []string {
	tags := lo.FilterMap(strings.Split(csv, ","), func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	})
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validateStruct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Permalink == "" && p.BlogName != "" {
		p.Permalink = DerivePostPermalink(p.BlogName, p.Title)
	}
}

func (p *Post) GetPermalink() string { return p.Permalink }
func (p *Post) GetAuthor() string    { return p.Author }
func (p *Post) GetBody() string      { return p.Body }
func (p *Post) IsDeleted() bool      { return p.Deleted }
func (p *Post) Children() []*Comment { return p.Comments }

// AddChild appends a top-level comment to the post.
func (p *Post) AddChild(comment *Comment) {
	p.Comments = append(p.Comments, comment)
}

// MarkDeleted flags the post as deleted. The audit fields keep the first deletion.
func (p *Post) MarkDeleted(user, timestamp string) {
	if p.Deleted {
		return
	}
	p.Deleted = true
	p.DeletedBy = user
	p.DeletedAt = timestamp
}

// HasTag reports whether any tag contains s.
func (p *Post) HasTag(s string) bool {
	return lo.SomeBy(p.Tags, func(tag string) bool {
		return strings.Contains(tag, s)
	})
}
