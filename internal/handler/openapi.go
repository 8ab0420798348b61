package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/classifieds/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaticDir holds the docs page and the OpenAPI description of the /items
// API, relative to the working directory. The router also serves it under
// /static, which is where the docs page fetches openapi.json from.
const StaticDir = "static"

// OpenAPIHandler renders the listing API reference at /docs.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: StaticDir,
	}
}

// ServeOpenAPIUI answers with openapi.html read from disk on every request,
// so an edited page or API description shows up without a restart. The
// response is marked no-cache for the same reason. A missing page is a 500.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.html"))
	if err != nil {
		return errors.Wrapf(err, "read docs page from %s", h.staticDir)
	}

	return c.HTMLBlob(http.StatusOK, page)
}
