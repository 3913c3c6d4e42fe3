package blogclient

import (
	"fmt"
	"testing"
	"time"
)

func listFixture() []Post {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Post{
		{ID: "1", Title: "Designing Landing Pages", Category: "Web Design", Views: 10, CreatedAt: base.AddDate(0, 0, 1), Author: Author{Name: "Jane"}},
		{ID: "2", Title: "Go Services in Production", Category: "Development", Views: 50, CreatedAt: base.AddDate(0, 0, 2), Author: Author{Name: "Sam"}},
		{ID: "3", Title: "SEO Basics", Category: "Digital Marketing", Views: 30, CreatedAt: base.AddDate(0, 0, 3), Author: Author{Name: "Jane"}},
		{ID: "4", Title: "Brand Guides", Category: "Branding", Views: 5, CreatedAt: base.AddDate(0, 0, 4), Author: Author{Name: "Alex"}},
	}
}

func TestListState_DefaultSortNewest(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), listFixture())

	visible := s.Visible()
	if len(visible) != 4 {
		t.Fatalf("got %d posts", len(visible))
	}
	if visible[0].ID != "4" || visible[3].ID != "1" {
		t.Errorf("order = %s..%s, want newest first", visible[0].ID, visible[3].ID)
	}
}

func TestListState_SortOrders(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), listFixture())

	s.SetSort(SortOldest)
	if got := s.Visible()[0].ID; got != "1" {
		t.Errorf("oldest first = %s, want 1", got)
	}

	s.SetSort(SortPopular)
	if got := s.Visible()[0].ID; got != "2" {
		t.Errorf("popular first = %s, want 2", got)
	}
}

func TestListState_SearchMatchesAuthorName(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), listFixture())

	s.SetSearch("jane")
	visible := s.Visible()
	if len(visible) != 2 {
		t.Fatalf("got %d posts, want 2", len(visible))
	}
	for _, post := range visible {
		if post.Author.Name != "Jane" {
			t.Errorf("unexpected post %s", post.ID)
		}
	}
}

func TestListState_CategoryFilter(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), listFixture())

	s.SetCategory("Development")
	if visible := s.Visible(); len(visible) != 1 || visible[0].ID != "2" {
		t.Errorf("visible = %v", visible)
	}

	s.SetCategory("all")
	if visible := s.Visible(); len(visible) != 4 {
		t.Errorf("all must clear the filter, got %d posts", len(visible))
	}
}

func TestListState_FilterChangeResetsPage(t *testing.T) {
	posts := make([]Post, 0, DefaultPageSize*2)
	for i := 0; i < DefaultPageSize*2; i++ {
		posts = append(posts, Post{
			ID:        fmt.Sprintf("p%d", i),
			Title:     fmt.Sprintf("Post %d", i),
			Category:  "Development",
			CreatedAt: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}

	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), posts)

	s.NextPage()
	if s.Page() != 2 {
		t.Fatalf("page = %d, want 2", s.Page())
	}

	s.SetSearch("post")
	if s.Page() != 1 {
		t.Errorf("search change must reset to page 1, got %d", s.Page())
	}

	s.NextPage()
	s.SetCategory("Development")
	if s.Page() != 1 {
		t.Errorf("category change must reset to page 1, got %d", s.Page())
	}

	s.NextPage()
	s.SetSort(SortPopular)
	if s.Page() != 1 {
		t.Errorf("sort change must reset to page 1, got %d", s.Page())
	}
}

func TestListState_PageClamping(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), listFixture())

	s.PrevPage()
	if s.Page() != 1 {
		t.Errorf("prev at first page must be a no-op, got %d", s.Page())
	}

	s.NextPage()
	if s.Page() != 1 {
		t.Errorf("next at last page must be a no-op, got %d", s.Page())
	}

	if s.TotalPages() != 1 {
		t.Errorf("total pages = %d, want 1", s.TotalPages())
	}
}

func TestListState_EmptyListHasOnePage(t *testing.T) {
	s := NewListState()
	s.ApplyFetch(s.BeginFetch(), nil)

	if s.TotalPages() != 1 {
		t.Errorf("total pages = %d, want 1", s.TotalPages())
	}
	if len(s.Visible()) != 0 {
		t.Errorf("visible = %v, want empty", s.Visible())
	}
}

func TestListState_StaleFetchIgnored(t *testing.T) {
	s := NewListState()

	stale := s.BeginFetch()
	fresh := s.BeginFetch()

	if !s.ApplyFetch(fresh, listFixture()) {
		t.Fatal("fresh fetch must apply")
	}
	if s.ApplyFetch(stale, nil) {
		t.Fatal("stale fetch must be ignored")
	}
	if len(s.Visible()) != 4 {
		t.Errorf("stale fetch clobbered the list: %d posts", len(s.Visible()))
	}
}
