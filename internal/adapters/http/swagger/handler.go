package swagger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrServe is returned when the embedded document cannot be converted.
var ErrServe = errors.New("swagger serve failed")

// Register attaches the ReDoc page and the OpenAPI document to mux.
// Routes:
//
//	GET /api-docs      -> ReDoc HTML
//	GET /openapi.yaml  -> embedded OpenAPI document
//	GET /openapi.json  -> the same document as JSON
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/api-docs", static("text/html; charset=utf-8", func() ([]byte, error) {
		return []byte(indexHTML), nil
	}))
	mux.HandleFunc("/openapi.yaml", static("application/yaml; charset=utf-8", func() ([]byte, error) {
		return OpenAPI, nil
	}))
	mux.HandleFunc("/openapi.json", static("application/json; charset=utf-8", openAPIJSON))
}

// static serves the bytes body returns for GET and HEAD; other methods are
// not found.
func static(contentType string, body func() ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		b, err := body()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(b)
	}
}

var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	return toJSON(OpenAPI)
})

// toJSON re-encodes a YAML document as JSON.
func toJSON(doc []byte) ([]byte, error) {
	var v map[string]any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("%w: decode openapi: %w", ErrServe, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode openapi: %w", ErrServe, err)
	}
	return b, nil
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>DraftSensei API Docs</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init('/openapi.json', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
