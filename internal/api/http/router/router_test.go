package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	httpctx "github.com/dtroode/bloglist-server/internal/api/http/context"
	"github.com/dtroode/bloglist-server/internal/mocks"
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServices struct {
	auth     *mocks.AuthService
	user     *mocks.UserService
	blog     *mocks.BlogService
	person   *mocks.PersonService
	identity *mocks.IdentityResolver
}

func newTestRouter(t *testing.T, limit LoginLimit) (*gin.Engine, testServices) {
	t.Helper()

	s := testServices{
		auth:     mocks.NewAuthService(t),
		user:     mocks.NewUserService(t),
		blog:     mocks.NewBlogService(t),
		person:   mocks.NewPersonService(t),
		identity: mocks.NewIdentityResolver(t),
	}
	r := New(Services{
		Auth:     s.auth,
		User:     s.user,
		Blog:     s.blog,
		Person:   s.person,
		Identity: s.identity,
	}, httpctx.NewManager(), limit, testutil.MakeNoopLogger())

	return r.Register(), s
}

func serve(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	e, _ := newTestRouter(t, LoginLimit{RPS: 10, Burst: 10})

	for _, path := range []string{"/api/unknown", "/nope", "/api/blogs/stats/extra"} {
		w := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"unknown endpoint"}`, w.Body.String(), path)
	}
}

func TestRouter_StatsIsNotAnID(t *testing.T) {
	e, s := newTestRouter(t, LoginLimit{RPS: 10, Burst: 10})
	s.blog.On("Stats", mock.Anything).Return(model.BlogStats{}, nil).Once()

	w := serve(e, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LoginRateLimited(t *testing.T) {
	e, s := newTestRouter(t, LoginLimit{RPS: 0.0001, Burst: 1})
	s.auth.On("Login", mock.Anything, "root", "wrong").Return(model.Session{}, apiErrors.NewErrInvalidCredentials()).Once()

	login := func() int {
		body, _ := json.Marshal(map[string]string{"username": "root", "password": "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return serve(e, req).Code
	}

	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusTooManyRequests, login())
}

func TestRouter_CreateBlogWithToken(t *testing.T) {
	e, s := newTestRouter(t, LoginLimit{RPS: 10, Burst: 10})
	user := model.User{ID: uuid.New(), Username: "root", Name: "Superuser"}

	s.identity.On("ResolveUser", mock.Anything, "good-token").Return(user, nil).Once()
	s.blog.On("CreateBlog", mock.Anything, mock.MatchedBy(func(p model.CreateBlogParams) bool {
		return p.Owner == user.ID
	})).Return(model.Blog{ID: uuid.New(), Title: "t", URL: "u", Owner: user.ID}, nil).Once()

	body, _ := json.Marshal(map[string]string{"title": "t", "url": "u"})
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")

	w := serve(e, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "root", got["user"].(map[string]any)["username"])
}

func TestRouter_InvalidTokenRejectedBeforeHandler(t *testing.T) {
	e, s := newTestRouter(t, LoginLimit{RPS: 10, Burst: 10})
	s.identity.On("ResolveUser", mock.Anything, "bad").Return(model.User{}, apiErrors.NewErrInvalidToken(model.ErrInvalidToken)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer bad")

	w := serve(e, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"token invalid"}`, w.Body.String())
	s.blog.AssertNotCalled(t, "DeleteBlog", mock.Anything, mock.Anything, mock.Anything)
}
