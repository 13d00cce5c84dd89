package site

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns an http.FileSystem rooted at the embedded static directory.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is part of the binary; fall back to the raw FS.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Index returns the board page.
func Index() ([]byte, error) {
	b, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServe, err)
	}
	return b, nil
}
