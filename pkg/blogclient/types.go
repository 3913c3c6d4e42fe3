package blogclient

import "time"

type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// Post is the wire shape the API serves: post fields flat, author
// expanded alongside them.
type Post struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	Views         int64     `json:"views"`
	ReadTime      int       `json:"readTime"`
	SEO           SEO       `json:"seo"`
	AuthorID      string    `json:"authorId"`
	Author        Author    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PostsPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// PostInput is the payload for create and update calls.
type PostInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug,omitempty"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured"`
	Published     bool     `json:"published"`
	ReadTime      int      `json:"readTime,omitempty"`
	SEO           SEO      `json:"seo"`
}

// ListQuery mirrors the listing query parameters. The zero value asks
// for the first page of published posts.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Featured bool
	// Unpublished flips the listing to drafts only.
	Unpublished bool
}
