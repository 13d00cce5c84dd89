package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/okian/draftsensei/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// heroDocument is the on-disk shape: {heroes: [{name, meta: {attributes}}]}.
// JSON documents of the same shape parse too.
type heroDocument struct {
	Heroes []model.HeroRecord `yaml:"heroes"`
}

// FileSource reads hero records from a YAML or JSON file.
type FileSource struct {
	path string
}

// NewFileSource returns a source over path. The file is read on every call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the source reads.
func (s *FileSource) Path() string { return s.path }

// Heroes reads and decodes the file.
func (s *FileSource) Heroes(ctx context.Context) ([]model.HeroRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return DecodeHeroes(b)
}

// DecodeHeroes parses a hero document. Mistyped values inside a hero leave
// that field unset, which the catalog later rejects; they do not fail the
// whole document.
func DecodeHeroes(b []byte) ([]model.HeroRecord, error) {
	var doc heroDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: decode: %w", ErrReadSource, err)
		}
	}
	return doc.Heroes, nil
}

// Close is a no-op.
func (s *FileSource) Close() error { return nil }
