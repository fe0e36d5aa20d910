package ports

import "context"

// OutputWriter replaces the file at path with content
type OutputWriter interface {
	Write(ctx context.Context, path string, content []byte) error
}
