package swagger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	convey.Convey("Given the docs routes on a mux", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		serve := func(method, path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
			return w
		}

		routes := []struct {
			path        string
			contentType string
			contains    string
		}{
			{"/api-docs", "text/html; charset=utf-8", "DraftSensei API Docs"},
			{"/openapi.yaml", "application/yaml; charset=utf-8", "openapi: 3.0.3"},
			{"/openapi.json", "application/json; charset=utf-8", `"openapi":"3.0.3"`},
		}
		for _, rt := range routes {
			convey.Convey("GET "+rt.path+" serves "+rt.contentType, func() {
				w := serve(http.MethodGet, rt.path)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, rt.contentType)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, rt.contains)
			})

			convey.Convey("POST "+rt.path+" is not found", func() {
				convey.So(serve(http.MethodPost, rt.path).Code, convey.ShouldEqual, http.StatusNotFound)
			})
		}

		convey.Convey("The ReDoc page loads the JSON document", func() {
			convey.So(serve(http.MethodGet, "/api-docs").Body.String(), convey.ShouldContainSubstring, "/openapi.json")
		})

		convey.Convey("The JSON document lists the draft and hero paths", func() {
			var doc map[string]any
			convey.So(json.Unmarshal(serve(http.MethodGet, "/openapi.json").Body.Bytes(), &doc), convey.ShouldBeNil)
			paths, ok := doc["paths"].(map[string]any)
			convey.So(ok, convey.ShouldBeTrue)
			for _, p := range []string{"/draft/suggest", "/draft/pick", "/draft/bans", "/draft/analyze", "/heroes/{name}/synergy"} {
				convey.So(paths, convey.ShouldContainKey, p)
			}
		})
	})

	convey.Convey("Register panics without a mux", t, func() {
		convey.So(func() { Register(context.Background(), nil) }, convey.ShouldPanic)
	})
}

func TestToJSON(t *testing.T) {
	convey.Convey("Malformed YAML fails with ErrServe", t, func() {
		_, err := toJSON([]byte("openapi: [unclosed"))
		convey.So(errors.Is(err, ErrServe), convey.ShouldBeTrue)
	})

	convey.Convey("A YAML mapping becomes a JSON object", t, func() {
		b, err := toJSON([]byte("info:\n  title: x\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(b), convey.ShouldEqual, `{"info":{"title":"x"}}`)
	})
}
