package blogclient

import (
	"strings"

	"github.com/raphael0002/graphics-garage-api/pkg/slug"
)

// EditorState backs the post editor form. In create mode the slug
// tracks the title until the user edits it by hand; in edit mode the
// stored slug is left alone. Tags and SEO keywords are kept both as
// slices and as the comma-separated strings the form inputs bind to.
type EditorState struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	Category      string

	Tags    []string
	TagsCSV string

	MetaTitle       string
	MetaDescription string
	Keywords        []string
	KeywordsCSV     string

	Featured  bool
	Published bool
	ReadTime  int

	autoSlug bool
}

func NewEditorState() *EditorState {
	return &EditorState{autoSlug: true}
}

func NewEditorStateFromPost(post Post) *EditorState {
	s := &EditorState{
		Title:           post.Title,
		Slug:            post.Slug,
		Excerpt:         post.Excerpt,
		Content:         post.Content,
		FeaturedImage:   post.FeaturedImage,
		Category:        post.Category,
		MetaTitle:       post.SEO.MetaTitle,
		MetaDescription: post.SEO.MetaDescription,
		Featured:        post.Featured,
		Published:       post.Published,
		ReadTime:        post.ReadTime,
	}
	for _, tag := range post.Tags {
		s.AddTag(tag)
	}
	for _, keyword := range post.SEO.Keywords {
		s.AddKeyword(keyword)
	}
	return s
}

// SetTitle updates the title and, while auto-derivation is active,
// regenerates the slug from it.
func (s *EditorState) SetTitle(title string) {
	s.Title = title
	if s.autoSlug {
		s.Slug = slug.Make(title)
	}
}

// SetSlug records a hand-edited slug and stops deriving it from the
// title.
func (s *EditorState) SetSlug(value string) {
	s.Slug = strings.TrimSpace(value)
	s.autoSlug = false
}

func (s *EditorState) AddTag(tag string) {
	s.Tags = appendUnique(s.Tags, tag)
	s.TagsCSV = strings.Join(s.Tags, ", ")
}

func (s *EditorState) RemoveTag(tag string) {
	s.Tags = removeValue(s.Tags, tag)
	s.TagsCSV = strings.Join(s.Tags, ", ")
}

func (s *EditorState) AddKeyword(keyword string) {
	s.Keywords = appendUnique(s.Keywords, keyword)
	s.KeywordsCSV = strings.Join(s.Keywords, ", ")
}

func (s *EditorState) RemoveKeyword(keyword string) {
	s.Keywords = removeValue(s.Keywords, keyword)
	s.KeywordsCSV = strings.Join(s.Keywords, ", ")
}

// Input assembles the payload for CreatePost or UpdatePost.
func (s *EditorState) Input() PostInput {
	return PostInput{
		Title:         s.Title,
		Slug:          s.Slug,
		Excerpt:       s.Excerpt,
		Content:       s.Content,
		FeaturedImage: s.FeaturedImage,
		Category:      s.Category,
		Tags:          s.Tags,
		Featured:      s.Featured,
		Published:     s.Published,
		ReadTime:      s.ReadTime,
		SEO: SEO{
			MetaTitle:       s.MetaTitle,
			MetaDescription: s.MetaDescription,
			Keywords:        s.Keywords,
		},
	}
}

func appendUnique(values []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return values
	}
	for _, existing := range values {
		if strings.EqualFold(existing, value) {
			return values
		}
	}
	return append(values, value)
}

func removeValue(values []string, value string) []string {
	out := values[:0]
	for _, existing := range values {
		if !strings.EqualFold(existing, strings.TrimSpace(value)) {
			out = append(out, existing)
		}
	}
	return out
}
