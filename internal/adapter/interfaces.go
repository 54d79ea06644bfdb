// Package adapter provides transport-layer abstractions for communicating
// with the KanMind server.
//
// The primary abstraction is [ServerAdapter], which decouples client-side
// code from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/StephEngl/KanMind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the KanMind
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// token via SetToken.
	Register(ctx context.Context, req models.RegistrationRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CheckEmail looks up the account registered under the given address.
	CheckEmail(ctx context.Context, email string) (models.UserInfo, error)

	// ListBoards returns the summaries of every board the authenticated
	// user owns or is a member of.
	ListBoards(ctx context.Context) ([]models.BoardSummary, error)

	// CreateBoard creates a board owned by the authenticated user.
	CreateBoard(ctx context.Context, req models.BoardCreateRequest) (models.BoardSummary, error)

	// GetBoard returns the detail view of a single board.
	GetBoard(ctx context.Context, boardID int64) (models.BoardDetail, error)

	// UpdateBoard patches a board's title and/or member list.
	UpdateBoard(ctx context.Context, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error)

	// DeleteBoard removes a board with everything on it.
	DeleteBoard(ctx context.Context, boardID int64) error

	// CreateTask creates a task on a board.
	CreateTask(ctx context.Context, req models.TaskCreateRequest) (models.TaskResponse, error)

	// AssignedTasks returns the tasks assigned to the authenticated user.
	AssignedTasks(ctx context.Context) ([]models.TaskResponse, error)

	// ReviewingTasks returns the tasks the authenticated user reviews.
	ReviewingTasks(ctx context.Context) ([]models.TaskResponse, error)

	// UpdateTask patches a task.
	UpdateTask(ctx context.Context, taskID int64, req models.TaskUpdateRequest) (models.TaskResponse, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID int64) error

	// ListComments returns a task's comments in order of creation.
	ListComments(ctx context.Context, taskID int64) ([]models.CommentResponse, error)

	// CreateComment attaches a comment to a task.
	CreateComment(ctx context.Context, taskID int64, req models.CommentCreateRequest) (models.CommentResponse, error)

	// DeleteComment removes a comment authored by the authenticated user.
	DeleteComment(ctx context.Context, taskID, commentID int64) error
}
