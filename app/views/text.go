// Package views renders blog trees as the plain text transcript printed by the
// show and find commands.
package views

import (
	"bufio"
	"io"
	"strings"

	"blogshell/app/models"
)

const (
	separator      = "- - - -"
	postDeleted    = "**post deleted**"
	commentDeleted = "**comment deleted**"
)

// Render writes blog in display order. Deleted entities keep their place in the
// tree but their author and content are replaced by a placeholder.
func Render(w io.Writer, blog *models.Blog) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("in " + blog.Name + ":\n\n")
	posts := 0
	blog.Walk(func(e models.Entity, depth int) bool {
		switch e := e.(type) {
		case *models.Post:
			if posts > 0 {
				bw.WriteString("\n")
			}
			posts++
			writePost(bw, e)
		case *models.Comment:
			writeComment(bw, e, depth)
		}
		return true
	})
	if posts > 0 {
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(blog *models.Blog) string {
	var sb strings.Builder
	Render(&sb, blog)
	return sb.String()
}

func writePost(w *bufio.Writer, p *models.Post) {
	w.WriteString("  " + separator + "\n")
	w.WriteString("\ttitle: " + p.Title + "\n")
	if !p.Deleted {
		w.WriteString("\tuserName: " + p.Author + "\n")
	}
	if len(p.Tags) > 0 {
		w.WriteString("\ttags: " + strings.Join(p.Tags, ",") + "\n")
	}
	w.WriteString("\ttimestamp: " + p.Timestamp + "\n")
	w.WriteString("\tpermalink: " + p.Permalink + "\n")
	body := p.Body
	if p.Deleted {
		body = postDeleted
	}
	w.WriteString("\tbody:\n\t  " + body + "\n")
}

// writeComment writes one comment; depth 1 is a direct reply to a post.
func writeComment(w *bufio.Writer, c *models.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	w.WriteString("\n")
	w.WriteString(indent + "    " + separator + "\n")
	if !c.Deleted {
		w.WriteString(indent + "\tuserName: " + c.Author + "\n")
	}
	w.WriteString(indent + "\tpermalink: " + c.Permalink + "\n")
	body := c.Body
	if c.Deleted {
		body = commentDeleted
	}
	w.WriteString(indent + "\tcomment:\n" + indent + "\t  " + body + "\n")
}
