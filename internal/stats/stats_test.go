package stats

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	title  string
	author string
	likes  int
}

func (e entry) AuthorName() string { return e.author }
func (e entry) LikeCount() int     { return e.likes }

var listWithOneBlog = []entry{
	{title: "Go To Statement Considered Harmful", author: "Edsger W. Dijkstra", likes: 5},
}

var blogs = []entry{
	{title: "React patterns", author: "Michael Chan", likes: 7},
	{title: "Go To Statement Considered Harmful", author: "Edsger W. Dijkstra", likes: 5},
	{title: "Canonical string reduction", author: "Edsger W. Dijkstra", likes: 12},
	{title: "First class tests", author: "Robert C. Martin", likes: 10},
	{title: "TDD harms architecture", author: "Robert C. Martin", likes: 0},
	{title: "Type wars", author: "Robert C. Martin", likes: 2},
}

func TestDummy(t *testing.T) {
	assert.Equal(t, 1, Dummy([]entry{}))
}

func TestTotalLikes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []entry
		want    int
	}{
		{name: "empty list is zero", entries: nil, want: 0},
		{name: "one blog equals its likes", entries: listWithOneBlog, want: 5},
		{name: "bigger list is summed", entries: blogs, want: 36},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TotalLikes(tt.entries))
		})
	}
}

func TestTotalLikes_MatchesSum(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		n := r.Intn(20)
		list := make([]entry, n)
		want := 0
		for j := range list {
			list[j] = entry{author: "a", likes: r.Intn(100)}
			want += list[j].likes
		}
		assert.Equal(t, want, TotalLikes(list))
	}
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, ok := FavoriteBlog([]entry{})
		assert.False(t, ok)
	})

	t.Run("max likes wins", func(t *testing.T) {
		got, ok := FavoriteBlog([]entry{{likes: 5}, {likes: 9}, {likes: 3}})
		require.True(t, ok)
		assert.Equal(t, 9, got.likes)
	})

	t.Run("earliest wins ties", func(t *testing.T) {
		got, ok := FavoriteBlog([]entry{{title: "a", likes: 4}, {title: "b", likes: 7}, {title: "c", likes: 7}})
		require.True(t, ok)
		assert.Equal(t, "b", got.title)
	})

	t.Run("bigger list", func(t *testing.T) {
		got, ok := FavoriteBlog(blogs)
		require.True(t, ok)
		assert.Equal(t, "Canonical string reduction", got.title)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, ok := MostBlogs([]entry{})
		assert.False(t, ok)
	})

	t.Run("largest group", func(t *testing.T) {
		list := []entry{{author: "A"}, {author: "B"}, {author: "A"}, {author: "B"}, {author: "A"}}
		got, ok := MostBlogs(list)
		require.True(t, ok)
		assert.Equal(t, AuthorCount{Author: "A", Blogs: 3}, got)
	})

	t.Run("first seen author wins ties", func(t *testing.T) {
		list := []entry{{author: "B"}, {author: "A"}, {author: "A"}, {author: "B"}}
		got, ok := MostBlogs(list)
		require.True(t, ok)
		assert.Equal(t, AuthorCount{Author: "B", Blogs: 2}, got)
	})

	t.Run("bigger list", func(t *testing.T) {
		got, ok := MostBlogs(blogs)
		require.True(t, ok)
		assert.Equal(t, AuthorCount{Author: "Robert C. Martin", Blogs: 3}, got)
	})
}

func TestMostLikes(t *testing.T) {
	_, ok := MostLikes([]entry{})
	assert.False(t, ok)

	got, ok := MostLikes(blogs)
	require.True(t, ok)
	assert.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, got)
}

func TestFunctions_DoNotMutateInput(t *testing.T) {
	list := slices.Clone(blogs)

	TotalLikes(list)
	FavoriteBlog(list)
	MostBlogs(list)
	MostLikes(list)

	assert.Equal(t, blogs, list)
}
