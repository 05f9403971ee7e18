package model

import "github.com/dtroode/bloglist-server/internal/stats"

// BlogView is a blog together with its owner, when the owner still exists.
type BlogView struct {
	Blog  Blog
	Owner *User
}

// UserView is a user together with the blogs listed in User.Blogs that could be resolved.
type UserView struct {
	User  User
	Blogs []Blog
}

// BlogStats is the aggregate view over all stored blogs.
// Pointer fields are nil when there are no blogs.
type BlogStats struct {
	TotalLikes   int
	FavoriteBlog *Blog
	MostBlogs    *stats.AuthorCount
	MostLikes    *stats.AuthorLikes
}
