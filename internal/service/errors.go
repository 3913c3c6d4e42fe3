package service

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrPostNotFound       = errors.New("post not found")
	ErrSlugTaken          = errors.New("a post with this slug already exists")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrAuthorNotFound     = errors.New("author does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMailNotSent        = errors.New("failed to send message")
)
