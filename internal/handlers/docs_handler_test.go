package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DocsHandlerSuite struct {
	suite.Suite
	dir string
	e   *echo.Echo
}

func TestDocsHandler(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

func (s *DocsHandlerSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.e = echo.New()
}

func (s *DocsHandlerSuite) serve(h echo.HandlerFunc, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Require().NoError(h(s.e.NewContext(req, rec)))
	return rec
}

func (s *DocsHandlerSuite) TestPage_DefaultsToBuiltIn() {
	h := NewDocsHandler(s.dir)

	rec := s.serve(h.Page, "/docs", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/html")
	s.Contains(rec.Body.String(), "/docs/openapi.json")
	s.NotEmpty(rec.Header().Get("ETag"))
}

func (s *DocsHandlerSuite) TestPage_CustomFileAndETag() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "scalar.html"), []byte("<html>custom</html>"), 0o644))
	h := NewDocsHandler(s.dir)

	rec := s.serve(h.Page, "/docs", nil)
	s.Equal("<html>custom</html>", rec.Body.String())

	rec = s.serve(h.Page, "/docs", map[string]string{"If-None-Match": rec.Header().Get("ETag")})
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *DocsHandlerSuite) TestOpenAPI_NotGenerated() {
	h := NewDocsHandler(s.dir)

	rec := s.serve(h.OpenAPI, "/docs/openapi.json", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_003")
}

func (s *DocsHandlerSuite) TestOpenAPI_ServesDocument() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "swagger.json"), []byte(`{"openapi":"3.0.0"}`), 0o644))
	h := NewDocsHandler(s.dir)

	rec := s.serve(h.OpenAPI, "/docs/openapi.json", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"openapi":"3.0.0"}`, rec.Body.String())
	s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
}
