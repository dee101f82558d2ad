package common

import "errors"

// Business logic errors
var (
	// Blog errors
	ErrBlogNotFound   = errors.New("blog not found")
	ErrSlugTaken      = errors.New("slug already in use")
	ErrConcurrentEdit = errors.New("blog was modified concurrently")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
