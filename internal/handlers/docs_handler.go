package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"bank-console/internal/errors"

	"github.com/labstack/echo/v4"
)

const defaultDocsPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Bank Console API</title>
</head>
<body>
<script id="api-reference" data-url="/docs/openapi.json"></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// DocsHandler serves the API reference page and the OpenAPI document that
// swag generates from the handler annotations into the docs directory.
type DocsHandler struct {
	page     []byte
	etag     string
	specPath string
}

// NewDocsHandler reads dir/scalar.html when present and falls back to a
// built-in reference page.
func NewDocsHandler(dir string) *DocsHandler {
	page, err := os.ReadFile(filepath.Join(dir, "scalar.html"))
	if err != nil || len(page) == 0 {
		page = []byte(defaultDocsPage)
	}

	return &DocsHandler{
		page:     page,
		etag:     generateETag(page),
		specPath: filepath.Join(dir, "swagger.json"),
	}
}

// Page serves the API reference
// @Summary API reference
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) Page(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("ETag", h.etag)
	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, h.page)
}

// OpenAPI serves the generated OpenAPI document
// @Summary OpenAPI document
// @Tags Documentation
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - document not generated"
// @Router /docs/openapi.json [get]
func (h *DocsHandler) OpenAPI(c echo.Context) error {
	if !fileExists(h.specPath) {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("API reference has not been generated"))
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	return c.File(h.specPath)
}

func generateETag(data []byte) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%x", md5.Sum(data)))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
