// Package scalar serves the interactive API reference page rendered by Scalar.
// The page shell is embedded at compile time and points the viewer at the
// module's OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML string

var page = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Title   string
	SpecURL string
}

// Handler renders the reference page once and serves the cached bytes.
func Handler(title, specURL string) (http.HandlerFunc, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: title, SpecURL: specURL}); err != nil {
		return nil, err
	}
	body := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}, nil
}
