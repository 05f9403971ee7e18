package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/bloglist-server/internal/api/http/context"
	"github.com/dtroode/bloglist-server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUser attaches user to the request context the way the authenticate middleware does.
func withUser(ctxManager model.ContextManager, user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Request = c.Request.WithContext(ctxManager.SetUserToContext(c.Request.Context(), *user))
		}
		c.Next()
	}
}

func newContextManager() model.ContextManager {
	return httpctx.NewManager()
}

func doRequest(t *testing.T, e *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

func assertStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}

