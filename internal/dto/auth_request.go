package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type PreviewRequest struct {
	Content string `json:"content" binding:"required"`
}

type PreviewResponse struct {
	HTML string `json:"html"`
}
