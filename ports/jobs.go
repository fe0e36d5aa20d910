package ports

import (
	"context"

	"sheetgen/domain/codegen"
)

// JobSource loads the ordered job list from persisted configuration
type JobSource interface {
	Load(ctx context.Context) ([]codegen.Job, error)
}
