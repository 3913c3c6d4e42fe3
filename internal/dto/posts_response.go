package dto

import "github.com/raphael0002/graphics-garage-api/internal/model"

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PostsPage struct {
	Posts      []*model.FullPost `json:"posts"`
	Pagination Pagination        `json:"pagination"`
}

type ViewsResponse struct {
	Views int64 `json:"views"`
}
