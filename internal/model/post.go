package model

import (
	"time"

	"github.com/google/uuid"
)

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

type Post struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featuredImage"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	Views         int64     `json:"views"`
	ReadTime      int       `json:"readTime"`
	SEO           SEO       `json:"seo"`
	AuthorID      uuid.UUID `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FullPost is a Post with its author reference expanded for clients.
type FullPost struct {
	Post
	Author Author `json:"author"`
}

type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
