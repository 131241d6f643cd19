package ui

import (
	"bytes"
	"net/http"
)

// Page is the outcome of a navigation: the view that finally rendered and
// the paths visited on the way.
type Page struct {
	Path   string
	Status int
	Body   string
	Trail  []string
}

// pageWriter captures a view in memory.
type pageWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newPageWriter() *pageWriter {
	return &pageWriter{header: make(http.Header)}
}

func (p *pageWriter) Header() http.Header { return p.header }

func (p *pageWriter) WriteHeader(status int) {
	if p.status == 0 {
		p.status = status
	}
}

func (p *pageWriter) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	return p.body.Write(b)
}

func (p *pageWriter) statusCode() int {
	if p.status == 0 {
		return http.StatusOK
	}
	return p.status
}

func isRedirect(status int) bool {
	return status >= 300 && status < 400
}
