package repositories

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"blogshell/app/models"
)

const (
	// BlogKeyPrefix prefixes every blog document key in key-value stores
	BlogKeyPrefix = "blog:"
)

var (
	ErrNotFound = errors.New("blog not found")
)

func blogKey(name string) []byte {
	return []byte(BlogKeyPrefix + name)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// decodeBlog unmarshals a stored document and checks it belongs to name
func decodeBlog(name string, data []byte) (*models.Blog, error) {
	var blog models.Blog
	if err := unmarshalEntity(data, &blog); err != nil {
		return nil, err
	}
	if blog.Name != name {
		return nil, fmt.Errorf("stored document for %q names blog %q", name, blog.Name)
	}
	return &blog, nil
}

// exportBlogs writes every blog of repo as one JSON document per line.
func exportBlogs(repo BlogRepository, w io.Writer) error {
	names, err := repo.List()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, name := range names {
		blog, err := repo.Get(name)
		if err != nil {
			return fmt.Errorf("failed to read blog %s: %w", name, err)
		}
		data, err := marshalEntity(blog)
		if err != nil {
			return err
		}
		bw.Write(data)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// importBlogs reads documents written by exportBlogs and stores each one.
func importBlogs(repo BlogRepository, r io.Reader) error {
	dec := json.NewDecoder(r)
	for {
		var blog models.Blog
		err := dec.Decode(&blog)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode backup: %w", err)
		}
		if err := repo.Put(&blog); err != nil {
			return fmt.Errorf("failed to restore blog %s: %w", blog.Name, err)
		}
	}
}
