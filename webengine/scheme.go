// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package webengine

import (
	"path"
	"strings"
)

// SchemeTable is the custom URI scheme handler spec section 4.H names:
// "a fixed table of embedded resources (HTML, CSS, JS, fonts, images)
// keyed by path-after-scheme." Registered once per Host at startup, one
// table for each of the overlay's and the main client's embedded
// resources.
type SchemeTable struct {
	resources map[string]resource
}

type resource struct {
	data     []byte
	mimeType string
}

// NewSchemeTable creates an empty table; callers add resources with Add
// before the engine is initialized.
func NewSchemeTable() *SchemeTable {
	return &SchemeTable{resources: make(map[string]resource)}
}

// Add registers data to be served at requestPath (the portion of the URI
// after the scheme and host, e.g. "/index.html"), with the given MIME
// type.
func (t *SchemeTable) Add(requestPath, mimeType string, data []byte) {
	t.resources[normalizeSchemePath(requestPath)] = resource{data: data, mimeType: mimeType}
}

// Serve looks up requestPath, returning its bytes and MIME type. ok is
// false for anything not in the fixed table — the scheme handler's
// ResourceHandler implementation should fail the request with
// ERR_FILE_NOT_FOUND in that case, matching an ordinary static file
// server's behavior for a missing file.
func (t *SchemeTable) Serve(requestPath string) (data []byte, mimeType string, ok bool) {
	res, ok := t.resources[normalizeSchemePath(requestPath)]
	return res.data, res.mimeType, ok
}

// normalizeSchemePath collapses an empty or "/" request path to
// "/index.html", the same default-document convention a static file
// server applies, and cleans "." / ".." segments so the embedded table
// can never be asked to serve a path outside itself.
func normalizeSchemePath(requestPath string) string {
	if requestPath == "" || requestPath == "/" {
		return "/index.html"
	}
	if !strings.HasPrefix(requestPath, "/") {
		requestPath = "/" + requestPath
	}
	return path.Clean(requestPath)
}
