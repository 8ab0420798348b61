package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/classifieds/internal/errs"
	"github.com/deppfellow/classifieds/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *pageRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	Name string `json:"name"`
}

func (r *customRequest) Validate() error {
	if r.Name == "" {
		return CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_Query(t *testing.T) {
	req := &pageRequest{}
	err := BindAndValidate(newContext(http.MethodGet, "/items?page=2&limit=5", ""), req)

	require.NoError(t, err)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.Limit)
}

func TestBindAndValidate_ValidatorErrors(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodGet, "/items?page=-1&limit=500", ""), &pageRequest{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "page", Error: "must be at least 1"},
		{Field: "limit", Error: "must not exceed 100"},
	}, httpErr.Errors)
}

func TestBindAndValidate_BindingError(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodGet, "/items?page=abc", ""), &pageRequest{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "Invalid request parameters", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "strconv")
}

func TestParamsError_BindingError(t *testing.T) {
	err := paramsError(echo.NewBindingError("limit", []string{"abc"}, "failed to bind field value to int", nil))

	assert.Equal(t, "Invalid request parameters", err.Message)
	assert.Equal(t, []errs.FieldError{{Field: "limit", Error: "has an invalid value"}}, err.Errors)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	for _, body := range []string{"{not json", `["a"]`, `{"name":`} {
		err := BindAndValidate(newContext(http.MethodPost, "/items", body), &customRequest{})

		httpErr := requireBadRequest(t, err)
		assert.Equal(t, "Invalid request body", httpErr.Message, body)
		assert.NotContains(t, httpErr.Message, "offset")
	}
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "/items", `{"name":""}`), &customRequest{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestFromRuleError(t *testing.T) {
	err := FromRuleError(&model.RuleError{
		Message: "Missing required fields for Services",
		Missing: []string{"serviceType", "cost"},
	})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "Missing required fields for Services", httpErr.Message)
	assert.True(t, httpErr.Override)
	assert.Equal(t, []errs.FieldError{
		{Field: "serviceType", Error: "is required"},
		{Field: "cost", Error: "is required"},
	}, httpErr.Errors)
}

func TestFromRuleError_PassesOtherErrors(t *testing.T) {
	orig := errors.New("boom")
	assert.Equal(t, orig, FromRuleError(orig))
}
