package blogclient

import (
	"sort"
	"strings"
)

// DefaultPageSize is how many cards the admin list shows per page.
const DefaultPageSize = 9

type SortOrder int

const (
	SortNewest SortOrder = iota
	SortOldest
	SortPopular
)

// ListState holds the admin list view-model: the fetched posts plus the
// search, category, sort and page the user has picked. Filtering and
// sorting happen locally over the fetched set.
type ListState struct {
	posts []Post

	search   string
	category string
	sort     SortOrder
	page     int
	pageSize int

	generation uint64
}

func NewListState() *ListState {
	return &ListState{
		page:     1,
		pageSize: DefaultPageSize,
		sort:     SortNewest,
	}
}

// BeginFetch marks the start of a reload and returns a token that
// ApplyFetch checks, so a slow response cannot clobber a newer one.
func (s *ListState) BeginFetch() uint64 {
	s.generation++
	return s.generation
}

// ApplyFetch installs the fetched posts if the token is still current.
// It reports whether the result was applied.
func (s *ListState) ApplyFetch(token uint64, posts []Post) bool {
	if token != s.generation {
		return false
	}
	s.posts = posts
	s.clampPage()
	return true
}

func (s *ListState) SetSearch(query string) {
	query = strings.TrimSpace(query)
	if query == s.search {
		return
	}
	s.search = query
	s.page = 1
}

// SetCategory filters to one category. "all" or an empty string clears
// the filter.
func (s *ListState) SetCategory(category string) {
	if strings.EqualFold(category, "all") {
		category = ""
	}
	if category == s.category {
		return
	}
	s.category = category
	s.page = 1
}

func (s *ListState) SetSort(order SortOrder) {
	if order == s.sort {
		return
	}
	s.sort = order
	s.page = 1
}

func (s *ListState) Page() int { return s.page }

func (s *ListState) TotalPages() int {
	pages := (len(s.filtered()) + s.pageSize - 1) / s.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// NextPage advances one page; at the last page it is a no-op.
func (s *ListState) NextPage() {
	if s.page < s.TotalPages() {
		s.page++
	}
}

// PrevPage goes back one page; at the first page it is a no-op.
func (s *ListState) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

// Visible returns the current page of the filtered, sorted list.
func (s *ListState) Visible() []Post {
	filtered := s.filtered()

	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return []Post{}
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end]
}

func (s *ListState) filtered() []Post {
	out := make([]Post, 0, len(s.posts))
	for _, post := range s.posts {
		if s.category != "" && post.Category != s.category {
			continue
		}
		if s.search != "" && !matchesSearch(post, s.search) {
			continue
		}
		out = append(out, post)
	}

	switch s.sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

func (s *ListState) clampPage() {
	if total := s.TotalPages(); s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}

func matchesSearch(post Post, query string) bool {
	query = strings.ToLower(query)
	for _, field := range []string{post.Title, post.Excerpt, post.Category, post.Author.Name} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
