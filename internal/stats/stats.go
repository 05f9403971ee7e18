// Package stats computes read-only statistics over blog lists.
//
// All functions are pure: they never modify their input and have no side effects.
package stats

// Entry is the minimal view of a blog the statistics need.
type Entry interface {
	AuthorName() string
	LikeCount() int
}

// AuthorCount is the number of entries written by an author.
type AuthorCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the like total collected by an author.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Dummy always returns 1.
func Dummy[T Entry](_ []T) int {
	return 1
}

// TotalLikes sums the likes of all entries.
func TotalLikes[T Entry](entries []T) int {
	total := 0
	for _, e := range entries {
		total += e.LikeCount()
	}
	return total
}

// FavoriteBlog returns the entry with the most likes. On ties the earliest entry wins.
// The boolean is false for an empty list.
func FavoriteBlog[T Entry](entries []T) (T, bool) {
	var fav T
	if len(entries) == 0 {
		return fav, false
	}

	fav = entries[0]
	for _, e := range entries[1:] {
		if e.LikeCount() > fav.LikeCount() {
			fav = e
		}
	}
	return fav, true
}

// MostBlogs returns the author with the most entries. On ties the author
// encountered first in the input wins.
func MostBlogs[T Entry](entries []T) (AuthorCount, bool) {
	authors, totals := groupBy(entries, func(T) int { return 1 })
	author, count, ok := maxBy(authors, totals)
	if !ok {
		return AuthorCount{}, false
	}
	return AuthorCount{Author: author, Blogs: count}, true
}

// MostLikes returns the author whose entries collected the most likes. On ties
// the author encountered first in the input wins.
func MostLikes[T Entry](entries []T) (AuthorLikes, bool) {
	authors, totals := groupBy(entries, func(e T) int { return e.LikeCount() })
	author, likes, ok := maxBy(authors, totals)
	if !ok {
		return AuthorLikes{}, false
	}
	return AuthorLikes{Author: author, Likes: likes}, true
}

// groupBy sums weight per author and returns the authors in first-seen order.
func groupBy[T Entry](entries []T, weight func(T) int) ([]string, map[string]int) {
	order := make([]string, 0)
	totals := make(map[string]int)
	for _, e := range entries {
		author := e.AuthorName()
		if _, seen := totals[author]; !seen {
			order = append(order, author)
		}
		totals[author] += weight(e)
	}
	return order, totals
}

func maxBy(order []string, totals map[string]int) (string, int, bool) {
	if len(order) == 0 {
		return "", 0, false
	}

	best := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[best] {
			best = author
		}
	}
	return best, totals[best], true
}
