package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"

	"trickhub/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newTestHelper(t *testing.T) *HTTPHelper {
	t.Helper()
	h, err := NewHTTPHelper("/media/")
	require.NoError(t, err)
	return h
}

func TestSendAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		codeType string
	}{
		{"not found", apperror.NotFound("article", 3), http.StatusNotFound, "notFound"},
		{"forbidden", apperror.Forbidden("nope"), http.StatusForbidden, "forbidden"},
		{"unauthorized", apperror.Unauthorized("who"), http.StatusUnauthorized, "unAuthorized"},
		{"conflict", apperror.Conflict("user", 1), http.StatusConflict, "conflict"},
		{"validation", apperror.ValidationFailed("slug", "bad"), http.StatusBadRequest, "validationError"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "internalServerError"},
	}

	h := newTestHelper(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, "/")
			require.NoError(t, h.SendAppError(c, tt.err))

			assert.Equal(t, tt.status, w.Code)
			body := decodeEnvelope(t, w)
			assert.Equal(t, float64(tt.status), body["code"])
			assert.Equal(t, tt.codeType, body["code_type"])
		})
	}
}

func TestSendAppError_HidesInternalDetails(t *testing.T) {
	h := newTestHelper(t)
	c, w := newTestContext(t, "/")

	_ = h.SendAppError(c, errors.New("pq: password authentication failed"))

	assert.NotContains(t, w.Body.String(), "password authentication")
}

func TestSendAppError_ValidationFieldMap(t *testing.T) {
	h := newTestHelper(t)

	c, w := newTestContext(t, "/")
	_ = h.SendAppError(c, apperror.ValidationFailed("username", "taken"))
	body := decodeEnvelope(t, w)
	assert.Equal(t, map[string]interface{}{"username": []interface{}{"taken"}}, body["code_message"])

	c, w = newTestContext(t, "/")
	_ = h.SendAppError(c, apperror.ValidationFailed("", "broken"))
	body = decodeEnvelope(t, w)
	assert.Equal(t, map[string]interface{}{nonFieldErrors: []interface{}{"broken"}}, body["code_message"])
}

type signup struct {
	UserName  string `validate:"required"`
	Password  string `validate:"required,min=8"`
	Password2 string `validate:"eqfield=Password"`
	Slug      string `validate:"omitempty,slug"`
}

func TestSendValidationError(t *testing.T) {
	h := newTestHelper(t)
	err := h.Validate.Struct(signup{Password: "short", Password2: "other", Slug: "Not A Slug"})
	require.Error(t, err)

	c, w := newTestContext(t, "/")
	require.NoError(t, h.SendValidationError(c, err.(validator.ValidationErrors)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeEnvelope(t, w)["code_message"].(map[string]interface{})
	assert.Contains(t, fields, "user_name")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "password2")
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields["user_name"].([]interface{})[0], "required")
}

func TestSendCreatedAndPaginated(t *testing.T) {
	h := newTestHelper(t)

	c, w := newTestContext(t, "/")
	_ = h.SendCreated(c, "", map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", decodeEnvelope(t, w)["code_message"])

	c, w = newTestContext(t, "/services/articles/?page=2&limit=5")
	_ = h.SendPaginated(c, "ok", []int{1}, h.GeneratePaging(c, 5, 2, 12))
	body := decodeEnvelope(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total_pages"])
	links := pagination["links"].(map[string]interface{})
	assert.Equal(t, "http://example.com/services/articles/?page=1&limit=5", links["previous"])
	assert.Equal(t, "http://example.com/services/articles/?page=3&limit=5", links["next"])
	assert.Equal(t, "http://example.com/services/articles/?page=3&limit=5", links["last"])
}

func TestGeneratePaging_LastPage(t *testing.T) {
	h := newTestHelper(t)
	c, _ := newTestContext(t, "/services/articles/")

	paging := h.GeneratePaging(c, 10, 1, 4)
	links := paging["links"].(map[string]interface{})
	assert.Equal(t, 1, paging["total_pages"])
	assert.Empty(t, links["next"])
	assert.Empty(t, links["previous"])
	assert.Empty(t, links["last"])
}

func TestClientIP(t *testing.T) {
	h := newTestHelper(t)

	c, _ := newTestContext(t, "/")
	c.Request.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", h.ClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", h.ClientIP(c))
}

func TestAbsoluteMediaURL(t *testing.T) {
	h := newTestHelper(t)
	c, _ := newTestContext(t, "/")

	assert.Equal(t, "http://example.com/media/articles/a.png", h.AbsoluteMediaURL(c, "articles/a.png"))
	assert.Equal(t, "", h.AbsoluteMediaURL(c, ""))

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://example.com/media/articles/a.png", h.AbsoluteMediaURL(c, "articles/a.png"))
}

func TestUnderscore(t *testing.T) {
	tests := map[string]string{
		"Title":     "title",
		"Password2": "password2",
		"UserName":  "user_name",
		"IPAddress": "ip_address",
		"ArticleID": "article_id",
	}
	for in, want := range tests {
		assert.Equal(t, want, Underscore(in), in)
	}
}

func TestSlugTag(t *testing.T) {
	h := newTestHelper(t)
	type payload struct {
		Slug string `validate:"slug"`
	}

	for _, ok := range []string{"hello-world", "my_post-2", "a--b"} {
		assert.NoError(t, h.Validate.Struct(payload{Slug: ok}), ok)
	}
	for _, bad := range []string{"Hello", "-lead", "trail_", "with space"} {
		assert.Error(t, h.Validate.Struct(payload{Slug: bad}), bad)
	}
}
