package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/mocks"
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/stats"
	"github.com/dtroode/bloglist-server/internal/testutil"
)

func newBlogEngine(svc BlogService, user *model.User) *gin.Engine {
	ctxManager := newContextManager()
	h := NewBlog(svc, ctxManager, testutil.MakeNoopLogger())

	e := gin.New()
	e.Use(withUser(ctxManager, user))
	e.GET("/api/blogs", h.List)
	e.GET("/api/blogs/stats", h.Stats)
	e.GET("/api/blogs/:id", h.Get)
	e.POST("/api/blogs", h.Create)
	e.PUT("/api/blogs/:id", h.Update)
	e.DELETE("/api/blogs/:id", h.Delete)
	return e
}

func TestBlog_List(t *testing.T) {
	owner := model.User{ID: uuid.New(), Username: "root", Name: "Superuser"}
	owned := model.Blog{ID: uuid.New(), Title: "a", URL: "u", Author: "x", Likes: 3, Owner: owner.ID}
	orphan := model.Blog{ID: uuid.New(), Title: "b", URL: "v", Owner: uuid.New()}

	svc := mocks.NewBlogService(t)
	svc.On("ListBlogs", mock.Anything).Return([]model.BlogView{
		{Blog: owned, Owner: &owner},
		{Blog: orphan},
	}, nil).Once()

	w := doRequest(t, newBlogEngine(svc, nil), http.MethodGet, "/api/blogs", nil)
	assertStatus(t, http.StatusOK, w)

	got := decode[[]blogResponse](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, blogResponse{
		ID: owned.ID.String(), Title: "a", URL: "u", Author: "x", Likes: 3,
		User: &ownerResponse{ID: owner.ID.String(), Username: "root", Name: "Superuser"},
	}, got[0])
	assert.Nil(t, got[1].User)
}

func TestBlog_Get(t *testing.T) {
	t.Run("malformatted id", func(t *testing.T) {
		svc := mocks.NewBlogService(t)

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodGet, "/api/blogs/5a3d5da59070081a82a3445", nil)
		assertStatus(t, http.StatusBadRequest, w)
		assert.Equal(t, "malformatted id", errorMessage(t, w))
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		svc := mocks.NewBlogService(t)
		svc.On("GetBlog", mock.Anything, id).Return(model.BlogView{}, apiErrors.NewErrBlogNotFound(id)).Once()

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodGet, "/api/blogs/"+id.String(), nil)
		assertStatus(t, http.StatusNotFound, w)
	})

	t.Run("found", func(t *testing.T) {
		blog := model.Blog{ID: uuid.New(), Title: "t", URL: "u", Owner: uuid.New()}
		svc := mocks.NewBlogService(t)
		svc.On("GetBlog", mock.Anything, blog.ID).Return(model.BlogView{Blog: blog}, nil).Once()

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodGet, "/api/blogs/"+blog.ID.String(), nil)
		assertStatus(t, http.StatusOK, w)
		assert.Equal(t, blog.ID.String(), decode[blogResponse](t, w).ID)
	})
}

func TestBlog_Create(t *testing.T) {
	user := model.User{ID: uuid.New(), Username: "root", Name: "Superuser"}

	t.Run("authenticated", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("CreateBlog", mock.Anything, mock.MatchedBy(func(p model.CreateBlogParams) bool {
			return p.Owner == user.ID && p.Title == "Type wars" && p.Likes == nil
		})).Return(model.Blog{ID: uuid.New(), Title: "Type wars", URL: "http://example.com", Owner: user.ID}, nil).Once()

		w := doRequest(t, newBlogEngine(svc, &user), http.MethodPost, "/api/blogs", map[string]string{
			"title": "Type wars",
			"url":   "http://example.com",
		})
		assertStatus(t, http.StatusCreated, w)

		got := decode[blogResponse](t, w)
		assert.Equal(t, 0, got.Likes)
		require.NotNil(t, got.User)
		assert.Equal(t, "root", got.User.Username)
	})

	t.Run("no token", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("CreateBlog", mock.Anything, mock.MatchedBy(func(p model.CreateBlogParams) bool {
			return p.Owner == uuid.Nil
		})).Return(model.Blog{}, apiErrors.NewErrTokenRequired()).Once()

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodPost, "/api/blogs", map[string]string{"title": "t", "url": "u"})
		assertStatus(t, http.StatusUnauthorized, w)
		assert.Equal(t, "token missing", errorMessage(t, w))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("CreateBlog", mock.Anything, mock.Anything).
			Return(model.Blog{}, apiErrors.NewErrValidation("title and url are required")).Once()

		w := doRequest(t, newBlogEngine(svc, &user), http.MethodPost, "/api/blogs", map[string]string{"author": "a"})
		assertStatus(t, http.StatusBadRequest, w)
	})

	t.Run("likes passed through", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("CreateBlog", mock.Anything, mock.MatchedBy(func(p model.CreateBlogParams) bool {
			return p.Likes != nil && *p.Likes == 5
		})).Return(model.Blog{ID: uuid.New(), Likes: 5, Owner: user.ID}, nil).Once()

		w := doRequest(t, newBlogEngine(svc, &user), http.MethodPost, "/api/blogs", map[string]any{"title": "t", "url": "u", "likes": 5})
		assertStatus(t, http.StatusCreated, w)
	})
}

func TestBlog_Update(t *testing.T) {
	owner := model.User{ID: uuid.New(), Username: "root", Name: "Superuser"}
	blog := model.Blog{ID: uuid.New(), Title: "t", URL: "u", Likes: 1, Owner: owner.ID}
	stranger := model.User{ID: uuid.New(), Username: "mluukkai"}

	tests := []struct {
		name       string
		user       *model.User
		wantCaller uuid.UUID
	}{
		{name: "anonymous caller", wantCaller: uuid.Nil},
		{name: "owner caller", user: &owner, wantCaller: owner.ID},
		{name: "other caller", user: &stranger, wantCaller: stranger.ID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			updated := blog
			updated.Likes = 2

			svc := mocks.NewBlogService(t)
			svc.On("UpdateBlog", mock.Anything, mock.MatchedBy(func(p model.UpdateBlogParams) bool {
				return p.ID == blog.ID && p.Caller == tt.wantCaller && p.Likes != nil && *p.Likes == 2
			})).Return(model.BlogView{Blog: updated, Owner: &owner}, nil).Once()

			w := doRequest(t, newBlogEngine(svc, tt.user), http.MethodPut, "/api/blogs/"+blog.ID.String(), map[string]any{"title": "t", "url": "u", "likes": 2})
			assertStatus(t, http.StatusOK, w)

			got := decode[blogResponse](t, w)
			assert.Equal(t, 2, got.Likes)
			require.NotNil(t, got.User)
			assert.Equal(t, ownerResponse{ID: owner.ID.String(), Username: "root", Name: "Superuser"}, *got.User)
		})
	}

	t.Run("owner removed", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("UpdateBlog", mock.Anything, mock.Anything).Return(model.BlogView{Blog: blog}, nil).Once()

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodPut, "/api/blogs/"+blog.ID.String(), map[string]any{"title": "t", "url": "u"})
		assertStatus(t, http.StatusOK, w)
		assert.Nil(t, decode[blogResponse](t, w).User)
	})

	t.Run("not owner when enforced", func(t *testing.T) {
		svc := mocks.NewBlogService(t)
		svc.On("UpdateBlog", mock.Anything, mock.Anything).Return(model.BlogView{}, apiErrors.NewErrNotOwner()).Once()

		w := doRequest(t, newBlogEngine(svc, &stranger), http.MethodPut, "/api/blogs/"+blog.ID.String(), map[string]any{"title": "t", "url": "u"})
		assertStatus(t, http.StatusUnauthorized, w)
	})

	t.Run("malformatted id", func(t *testing.T) {
		svc := mocks.NewBlogService(t)

		w := doRequest(t, newBlogEngine(svc, nil), http.MethodPut, "/api/blogs/xyz", map[string]any{"title": "t"})
		assertStatus(t, http.StatusBadRequest, w)
	})
}

func TestBlog_Delete(t *testing.T) {
	user := model.User{ID: uuid.New(), Username: "root"}
	blogID := uuid.New()

	tests := []struct {
		name       string
		user       *model.User
		wantCaller uuid.UUID
		svcErr     error
		wantStatus int
	}{
		{name: "owner", user: &user, wantCaller: user.ID, wantStatus: http.StatusNoContent},
		{name: "no token", wantCaller: uuid.Nil, svcErr: apiErrors.NewErrTokenRequired(), wantStatus: http.StatusUnauthorized},
		{name: "not owner", user: &user, wantCaller: user.ID, svcErr: apiErrors.NewErrNotOwner(), wantStatus: http.StatusUnauthorized},
		{name: "missing", user: &user, wantCaller: user.ID, svcErr: apiErrors.NewErrBlogNotFound(blogID), wantStatus: http.StatusNotFound},
		{name: "out of sync", user: &user, wantCaller: user.ID, svcErr: apiErrors.NewErrConsistency(blogID, user.ID, assert.AnError), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewBlogService(t)
			svc.On("DeleteBlog", mock.Anything, tt.wantCaller, blogID).Return(tt.svcErr).Once()

			w := doRequest(t, newBlogEngine(svc, tt.user), http.MethodDelete, "/api/blogs/"+blogID.String(), nil)
			assertStatus(t, tt.wantStatus, w)
		})
	}
}

func TestBlog_Stats(t *testing.T) {
	favorite := model.Blog{ID: uuid.New(), Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12}

	svc := mocks.NewBlogService(t)
	svc.On("Stats", mock.Anything).Return(model.BlogStats{
		TotalLikes:   36,
		FavoriteBlog: &favorite,
		MostBlogs:    &stats.AuthorCount{Author: "Robert C. Martin", Blogs: 3},
		MostLikes:    &stats.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
	}, nil).Once()

	w := doRequest(t, newBlogEngine(svc, nil), http.MethodGet, "/api/blogs/stats", nil)
	assertStatus(t, http.StatusOK, w)

	assert.JSONEq(t, `{
		"totalLikes": 36,
		"favoriteBlog": {"title": "Canonical string reduction", "author": "Edsger W. Dijkstra", "likes": 12},
		"mostBlogs": {"author": "Robert C. Martin", "blogs": 3},
		"mostLikes": {"author": "Edsger W. Dijkstra", "likes": 17}
	}`, w.Body.String())
}
