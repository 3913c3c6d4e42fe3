package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
