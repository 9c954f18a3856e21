package models

import "strings"

// DerivePostPermalink builds the permalink of a post: every rune of title that is not
// an ASCII letter or digit becomes a single underscore, prefixed by "blogName.".
func DerivePostPermalink(blogName, title string) string {
	var sb strings.Builder
	sb.Grow(len(blogName) + 1 + len(title))
	sb.WriteString(blogName)
	sb.WriteByte('.')
	for _, r := range title {
		if isASCIIAlnum(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
