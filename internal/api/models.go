package api

import (
	"github.com/google/uuid"
)

// Request and response payloads for the HTTP API.

// RegisterRequest is the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the successful response for authentication endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse describes a user without credential material.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=4096"`
}

// UpdateTaskRequest is the payload for updating a task. Updates replace the
// title and description wholesale.
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=4096"`
}

// CreateTaskBatchRequest is the payload for creating several tasks in one
// atomic request.
type CreateTaskBatchRequest struct {
	Tasks []CreateTaskRequest `json:"tasks" validate:"required,min=1,max=100,dive"`
}

// TaskResponse describes a task as returned by the API.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
}

// TaskListResponse is the response for the task listing endpoint.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// CreateBookRequest is the payload for adding a book to the shared catalog.
type CreateBookRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=4096"`
}

// UpdateBookRequest is the payload for updating a book. Updates replace the
// title and description wholesale.
type UpdateBookRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=4096"`
}

// BookResponse describes a book as returned by the API.
type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
