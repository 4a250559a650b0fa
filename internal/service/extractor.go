package service

import (
	"context"

	"github.com/compozy/headerver/internal/domain"
)

// VersionExtractor defines the interface for reading version macros out of header text.

type VersionExtractor interface {
	Extract(ctx context.Context, content string) (*domain.Components, error)
}
