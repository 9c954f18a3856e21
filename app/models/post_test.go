package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name:    "valid post",
			post:    NewPost("tech", "Jane", "Hi There", "body text", "x,y", "2024-01-01T00:00:00Z"),
			wantErr: false,
		},
		{
			name:    "empty body is allowed",
			post:    NewPost("tech", "Jane", "Hi There", "", "", "2024-01-01T00:00:00Z"),
			wantErr: false,
		},
		{
			name:    "empty author is allowed",
			post:    NewPost("tech", "", "Hi There", "body", "", "2024-01-01T00:00:00Z"),
			wantErr: false,
		},
		{
			name:    "empty title is allowed",
			post:    NewPost("tech", "Jane", "", "body", "", "2024-01-01T00:00:00Z"),
			wantErr: false,
		},
		{
			name:    "missing timestamp",
			post:    NewPost("tech", "Jane", "Hi There", "body", "", ""),
			wantErr: true,
		},
		{
			name:    "missing blog name",
			post:    NewPost("", "Jane", "Hi There", "body", "", "2024-01-01T00:00:00Z"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostValidationErrorIsOneLine(t *testing.T) {
	err := NewPost("", "Jane", "Hi There", "body", "", "").Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "'Post.BlogName'")
	assert.Contains(t, err.Error(), "'Post.Timestamp'")
	assert.NotContains(t, err.Error(), "\n")
}

func TestNewPostWithEmptyTitle(t *testing.T) {
	post := NewPost("tech", "Bob", "", "body", "", "T5")
	assert.Equal(t, "tech.", post.Permalink)
	assert.NoError(t, post.Validate())
}

func TestNewPost(t *testing.T) {
	post := NewPost("tech", "Jane", "Hi There", "body text", " x , y,,", "T1")
	assert.Equal(t, "tech.Hi_There", post.Permalink)
	assert.Equal(t, []string{"x", "y"}, post.Tags)
	assert.False(t, post.Deleted)
	assert.Nil(t, post.Comments)
}

func TestParseTags(t *testing.T) {
	assert.Nil(t, ParseTags(""))
	assert.Nil(t, ParseTags(" , "))
	assert.Equal(t, []string{"go", "go"}, ParseTags("go,go"))
	assert.Equal(t, []string{"a b", "c"}, ParseTags("a b, c"))
}

func TestPostHasTag(t *testing.T) {
	post := NewPost("tech", "Jane", "Hi", "", "golang,rust", "T1")
	assert.True(t, post.HasTag("lang"))
	assert.False(t, post.HasTag("python"))
}

func TestPostMarkDeleted(t *testing.T) {
	post := NewPost("tech", "Jane", "Hi", "body", "", "T1")

	post.MarkDeleted("Jane", "T2")
	assert.True(t, post.IsDeleted())
	assert.Equal(t, "Jane", post.DeletedBy)
	assert.Equal(t, "T2", post.DeletedAt)

	post.MarkDeleted("Jane", "T3")
	assert.Equal(t, "T2", post.DeletedAt)
}
