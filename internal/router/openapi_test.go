package router_test

import (
	"context"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var echoParam = regexp.MustCompile(`:(\w+)`)

// The published API description must stay in step with the listing routes.
func TestOpenAPIDocumentCoversRoutes(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "static", "openapi.json"))
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	e := newTestRouter(t, false)

	for _, route := range e.Routes() {
		if !strings.HasPrefix(route.Path, "/items") {
			continue
		}

		path := echoParam.ReplaceAllString(route.Path, "{$1}")
		if path == "/items/" {
			path = "/items"
		}

		item := doc.Paths.Find(path)
		require.NotNil(t, item, "undocumented path %s", path)
		assert.NotNil(t, item.GetOperation(route.Method), "undocumented %s %s", route.Method, path)
	}

	assert.NotNil(t, doc.Paths.Find("/items/{id}").GetOperation(http.MethodDelete))
}
