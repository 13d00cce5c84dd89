// Package repository provides the hero record sources the catalog is built
// from and the store that keeps per-session diversity state.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/draftsensei/internal/domain/model"
)

// Source kinds accepted by Open.
const (
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// HeroSource yields the stored hero records. Sources never write.
type HeroSource interface {
	Heroes(ctx context.Context) ([]model.HeroRecord, error)
	Close() error
}

// Open returns the hero source of the given kind reading from path.
// "json" is accepted as an alias of "yaml" since the parser reads both.
func Open(ctx context.Context, kind, path string) (HeroSource, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case SourceYAML, "yml", "json", "file":
		return NewFileSource(path), nil
	case SourceSQLite:
		return OpenSQLite(ctx, DefaultSQLiteConfig(path))
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnsupportedSource)
	}
}
