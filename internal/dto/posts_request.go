package dto

import "github.com/raphael0002/graphics-garage-api/internal/model"

type CreatePostRequest struct {
	Title         string    `json:"title" binding:"required"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt" binding:"required"`
	Content       string    `json:"content" binding:"required"`
	FeaturedImage string    `json:"featuredImage"`
	Category      string    `json:"category" binding:"required"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	ReadTime      int       `json:"readTime"`
	SEO           model.SEO `json:"seo"`
	// Author defaults to the authenticated user when empty.
	Author string `json:"author"`
}

// UpdatePostRequest carries a full or partial replacement; nil fields are
// left untouched.
type UpdatePostRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	FeaturedImage *string    `json:"featuredImage"`
	Category      *string    `json:"category"`
	Tags          *[]string  `json:"tags"`
	Featured      *bool      `json:"featured"`
	Published     *bool      `json:"published"`
	ReadTime      *int       `json:"readTime"`
	SEO           *model.SEO `json:"seo"`
}

// PostFilter is the parsed form of the list query string. Published is
// always set: the default and every value except the literal "false"
// restrict results to published posts.
type PostFilter struct {
	Page         int
	Limit        int
	Category     string
	FeaturedOnly bool
	Published    bool
	Search       string
}
