package sqlite

import (
	"context"

	"exametl/internal/storage"
	sqliteddl "exametl/internal/storage/sqlite/ddl"
)

// newRepository is a seam so tests can avoid opening real databases.
var newRepository = NewRepository

// wrappedRepo adapts *Repository to storage.Repository, adding the Close
// method backed by the cleanup function returned from NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("sqlite", sqliteddl.Generator{})
}
