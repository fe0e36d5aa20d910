package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sheetgen/internal/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileWriter replaces output files through a temp file and rename, so the
// destination holds either the old or the new content, never a partial write.
type FileWriter struct{}

// NewFileWriter creates a file writer
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Write replaces path with content. Existing content is discarded.
func (w *FileWriter) Write(ctx context.Context, path string, content []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return errors.OutputIO(path, fmt.Errorf("destination is a directory"))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.OutputIO(path, fmt.Errorf("creating output directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.OutputIO(path, fmt.Errorf("creating temp file: %w", err))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return errors.OutputIO(path, fmt.Errorf("writing temp file: %w", err))
	}
	if err = tmp.Sync(); err != nil {
		return errors.OutputIO(path, fmt.Errorf("syncing temp file: %w", err))
	}
	if err = tmp.Close(); err != nil {
		return errors.OutputIO(path, fmt.Errorf("closing temp file: %w", err))
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return errors.OutputIO(path, fmt.Errorf("setting permissions: %w", err))
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.OutputIO(path, fmt.Errorf("replacing destination: %w", err))
	}

	return nil
}
