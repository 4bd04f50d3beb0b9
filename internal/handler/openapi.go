package handler

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static/*
var staticFiles embed.FS

// OpenAPIHandler serves the OpenAPI document and a small UI to try the API.
//
// Both files are embedded in the binary, so docs work regardless of the
// working directory the service was started from.
type OpenAPIHandler struct {
	Handler
	files fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	files, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(fmt.Sprintf("static subtree: %v", err))
	}

	return &OpenAPIHandler{
		Handler: NewHandler(s),
		files:   files,
	}
}

// Files exposes the embedded static directory for the /static route.
func (h *OpenAPIHandler) Files() fs.FS {
	return h.files
}

// ServeOpenAPIUI serves openapi.html. Cache-Control is "no-cache" so clients
// pick up doc changes immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.files, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

// ServeOpenAPISpec serves the raw OpenAPI document.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	doc, err := fs.ReadFile(h.files, "openapi.json")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, doc)
}
