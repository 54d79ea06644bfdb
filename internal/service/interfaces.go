package service

import (
	"context"

	"github.com/StephEngl/KanMind/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegistrationRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CheckEmail(ctx context.Context, email string) (models.UserInfo, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureGuestAccount makes sure the configured demo account exists.
	// Returns nil without error when no guest account is configured.
	EnsureGuestAccount(ctx context.Context) (*models.User, error)
}

// BoardService enforces board ownership and membership rules on top of the
// board repository.
type BoardService interface {
	CreateBoard(ctx context.Context, userID int64, req models.BoardCreateRequest) (models.BoardSummary, error)
	ListBoards(ctx context.Context, userID int64) ([]models.BoardSummary, error)
	GetBoard(ctx context.Context, userID, boardID int64) (models.BoardDetail, error)
	UpdateBoard(ctx context.Context, userID, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error)
	DeleteBoard(ctx context.Context, userID, boardID int64) error
}

// TaskService enforces membership rules for task mutations and provides the
// per-user task views.
type TaskService interface {
	CreateTask(ctx context.Context, userID int64, req models.TaskCreateRequest) (models.Task, error)
	ListAssignedTasks(ctx context.Context, userID int64) ([]models.Task, error)
	ListReviewingTasks(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, req models.TaskUpdateRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// CommentService enforces membership and authorship rules for task comments.
type CommentService interface {
	CreateComment(ctx context.Context, userID, taskID int64, req models.CommentCreateRequest) (models.Comment, error)
	ListComments(ctx context.Context, userID, taskID int64) ([]models.Comment, error)
	DeleteComment(ctx context.Context, userID, taskID, commentID int64) error
}
