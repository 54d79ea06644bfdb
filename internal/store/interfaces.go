package store

import (
	"context"
	"time"

	"github.com/StephEngl/KanMind/models"
)

//go:generate mockgen -destination=../mock/mock_store.go -package=mock github.com/StephEngl/KanMind/internal/store UserRepository,BoardRepository,TaskRepository,CommentRepository

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email matches exactly.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user by primary key.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUsersByIDs retrieves all users whose IDs appear in ids.
	// Missing IDs are silently absent from the result; callers compare
	// lengths when existence matters.
	FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)
}

// BoardRepository is the data-access contract for boards and their
// membership relation.
type BoardRepository interface {
	// CreateBoard persists a new board together with its member set.
	CreateBoard(ctx context.Context, board models.Board) (models.Board, error)

	// GetBoard retrieves a board with its MemberIDs populated.
	// Returns ErrBoardNotFound if no such board exists.
	GetBoard(ctx context.Context, boardID int64) (models.Board, error)

	// ListBoardsForUser returns summaries of every board the user owns or
	// is a member of, with task/member counts aggregated.
	ListBoardsForUser(ctx context.Context, userID int64) ([]models.BoardSummary, error)

	// Summary returns the aggregated summary of a single board.
	Summary(ctx context.Context, boardID int64) (models.BoardSummary, error)

	// UpdateBoard applies a partial update (currently the title) and
	// optionally replaces the member set when members is non-nil.
	UpdateBoard(ctx context.Context, boardID int64, title *string, members *[]int64) error

	// DeleteBoard removes a board; tasks and comments go with it via
	// FK cascade. Returns ErrBoardNotFound when nothing was deleted.
	DeleteBoard(ctx context.Context, boardID int64) error

	// IsMember reports whether the user appears in the board's member set.
	// The owner is not implicitly a member.
	IsMember(ctx context.Context, boardID, userID int64) (bool, error)

	// HasAnyBoard reports whether the user owns or is a member of at least
	// one board.
	HasAnyBoard(ctx context.Context, userID int64) (bool, error)

	// GetMembers returns the expanded member info of a board.
	GetMembers(ctx context.Context, boardID int64) ([]models.UserInfo, error)

	// DeleteBoardsOwnedBefore removes every board owned by ownerID created
	// before cutoff and returns how many were removed. Used by the guest
	// sweeper.
	DeleteBoardsOwnedBefore(ctx context.Context, ownerID int64, cutoff time.Time) (int64, error)
}

// TaskRepository is the data-access contract for tasks.
type TaskRepository interface {
	// CreateTask persists a new task and returns it fully loaded
	// (expanded assignee/reviewer, zero comment count).
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetTask retrieves a task with expanded user info and comment count.
	// Returns ErrTaskNotFound if no such task exists.
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// ListBoardTasks returns all tasks of a board, oldest first.
	ListBoardTasks(ctx context.Context, boardID int64) ([]models.Task, error)

	// ListAssignedTasks returns all tasks where the user is the assignee.
	ListAssignedTasks(ctx context.Context, userID int64) ([]models.Task, error)

	// ListReviewingTasks returns all tasks where the user is the reviewer.
	ListReviewingTasks(ctx context.Context, userID int64) ([]models.Task, error)

	// UpdateTask applies a partial update built from the non-nil fields of
	// update. Returns ErrTaskNotFound when the task does not exist.
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdateRequest) error

	// DeleteTask removes a task and its comments via FK cascade.
	// Returns ErrTaskNotFound when nothing was deleted.
	DeleteTask(ctx context.Context, taskID int64) error
}

// CommentRepository is the data-access contract for task comments.
type CommentRepository interface {
	// CreateComment persists a new comment and returns it with the
	// author's full name resolved.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListTaskComments returns all comments of a task in chronological
	// order of creation.
	ListTaskComments(ctx context.Context, taskID int64) ([]models.Comment, error)

	// GetComment retrieves a single comment.
	// Returns ErrCommentNotFound if no such comment exists.
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)

	// DeleteComment removes a comment.
	// Returns ErrCommentNotFound when nothing was deleted.
	DeleteComment(ctx context.Context, commentID int64) error
}
