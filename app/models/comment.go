package models

// NewComment builds a comment. Its permalink is the timestamp verbatim.
func NewComment(author, body, timestamp string) *Comment {
	c := &Comment{
		Author:    author,
		Body:      body,
		Timestamp: timestamp,
	}
	c.BeforeCreate()
	return c
}

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validateStruct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.Permalink == "" {
		c.Permalink = c.Timestamp
	}
}

func (c *Comment) GetPermalink() string { return c.Permalink }
func (c *Comment) GetAuthor() string    { return c.Author }
func (c *Comment) GetBody() string      { return c.Body }
func (c *Comment) IsDeleted() bool      { return c.Deleted }
func (c *Comment) Children() []*Comment { return c.Comments }

// AddChild appends a reply to the comment.
func (c *Comment) AddChild(comment *Comment) {
	c.Comments = append(c.Comments, comment)
}

// MarkDeleted flags the comment as deleted. The audit fields keep the first deletion.
func (c *Comment) MarkDeleted(user, timestamp string) {
	if c.Deleted {
		return
	}
	c.Deleted = true
	c.DeletedBy = user
	c.DeletedAt = timestamp
}

func (c *Comment) clone() *Comment {
	cp := *c
	cp.Comments = cloneComments(c.Comments)
	return &cp
}

func cloneComments(comments []*Comment) []*Comment {
	if comments == nil {
		return nil
	}
	out := make([]*Comment, len(comments))
	for i, c := range comments {
		out[i] = c.clone()
	}
	return out
}
