package handler

import (
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/stats"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type createUserRequest struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Password *string `json:"password"`
}

type blogRequest struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author"`
	Likes  *int   `json:"likes"`
}

type personRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type blogSummaryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author"`
}

type blogResponse struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	URL    string         `json:"url"`
	Author string         `json:"author"`
	Likes  int            `json:"likes"`
	User   *ownerResponse `json:"user"`
}

type userResponse struct {
	ID       string                `json:"id"`
	Username string                `json:"username"`
	Name     string                `json:"name"`
	Blogs    []blogSummaryResponse `json:"blogs"`
}

type personResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type favoriteResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type statsResponse struct {
	TotalLikes   int                `json:"totalLikes"`
	FavoriteBlog *favoriteResponse  `json:"favoriteBlog"`
	MostBlogs    *stats.AuthorCount `json:"mostBlogs"`
	MostLikes    *stats.AuthorLikes `json:"mostLikes"`
}

func newOwnerResponse(u *model.User) *ownerResponse {
	if u == nil {
		return nil
	}
	return &ownerResponse{ID: u.ID.String(), Username: u.Username, Name: u.Name}
}

func newBlogResponse(b model.Blog, owner *model.User) blogResponse {
	return blogResponse{
		ID:     b.ID.String(),
		Title:  b.Title,
		URL:    b.URL,
		Author: b.Author,
		Likes:  b.Likes,
		User:   newOwnerResponse(owner),
	}
}

func newUserResponse(view model.UserView) userResponse {
	blogs := make([]blogSummaryResponse, 0, len(view.Blogs))
	for _, b := range view.Blogs {
		blogs = append(blogs, blogSummaryResponse{ID: b.ID.String(), Title: b.Title, URL: b.URL, Author: b.Author})
	}
	return userResponse{
		ID:       view.User.ID.String(),
		Username: view.User.Username,
		Name:     view.User.Name,
		Blogs:    blogs,
	}
}

func newPersonResponse(p model.Person) personResponse {
	return personResponse{ID: p.ID.String(), Name: p.Name, Number: p.Number}
}

func newStatsResponse(s model.BlogStats) statsResponse {
	resp := statsResponse{
		TotalLikes: s.TotalLikes,
		MostBlogs:  s.MostBlogs,
		MostLikes:  s.MostLikes,
	}
	if s.FavoriteBlog != nil {
		resp.FavoriteBlog = &favoriteResponse{
			Title:  s.FavoriteBlog.Title,
			Author: s.FavoriteBlog.Author,
			Likes:  s.FavoriteBlog.Likes,
		}
	}
	return resp
}
