package db

import (
	"context"
	"errors"
	"fmt"
)

// ErrTargetNotEmpty is returned by CopyPages when the destination already holds pages.
var ErrTargetNotEmpty = errors.New("target store already has pages")

// CopyPages loads the full collection from src and saves it to dst unchanged.
// dst must be empty so ids and slugs cannot collide.
func CopyPages(ctx context.Context, src, dst Backend) (int, error) {
	pages, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}

	existing, err := dst.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load target: %w", err)
	}
	if len(existing) > 0 {
		return 0, ErrTargetNotEmpty
	}

	if err := dst.Save(ctx, pages); err != nil {
		return 0, fmt.Errorf("save target: %w", err)
	}
	return len(pages), nil
}
