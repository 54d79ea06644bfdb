package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
// Read queries join the "users" table twice so a single scan produces the
// expanded assignee and reviewer, and aggregate the comment count inline.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it fully loaded. A foreign
// key violation on the board reference maps to [ErrBoardNotFound].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	var dueDate any
	if task.DueDate != nil {
		dueDate = task.DueDate.Time
	}

	row := r.db.QueryRowContext(ctx, createTask,
		task.BoardID, task.Title, task.Description, task.Status, task.Priority,
		task.AssigneeID, task.ReviewerID, dueDate, task.CreatedByID)

	var taskID int64
	if err := row.Scan(&taskID); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")

		if isForeignKeyViolation(err) {
			return models.Task{}, ErrBoardNotFound
		}
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.GetTask(ctx, taskID)
}

// GetTask retrieves a task with expanded user info and comment count.
func (r *taskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findTaskByID, taskID)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// ListBoardTasks returns every task of the board, oldest first.
func (r *taskRepository) ListBoardTasks(ctx context.Context, boardID int64) ([]models.Task, error) {
	return r.listTasks(ctx, listTasksByBoard, boardID, "*taskRepository.ListBoardTasks")
}

// ListAssignedTasks returns every task where the user is the assignee.
func (r *taskRepository) ListAssignedTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.listTasks(ctx, listTasksByAssignee, userID, "*taskRepository.ListAssignedTasks")
}

// ListReviewingTasks returns every task where the user is the reviewer.
func (r *taskRepository) ListReviewingTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.listTasks(ctx, listTasksByReviewer, userID, "*taskRepository.ListReviewingTasks")
}

// UpdateTask builds an UPDATE from the fields present in update and applies
// it. Nullable fields sent as explicit null are set to NULL. The board of a
// task never changes here.
func (r *taskRepository) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdateRequest) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("tasks").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"task_id": taskID}).
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	// a set Optional holding nil writes NULL, clearing the column
	if update.AssigneeID.Set {
		builder = builder.Set("assignee_id", update.AssigneeID.Value)
	}
	if update.ReviewerID.Set {
		builder = builder.Set("reviewer_id", update.ReviewerID.Value)
	}
	if update.DueDate.Set {
		if update.DueDate.Value != nil {
			builder = builder.Set("due_date", update.DueDate.Value.Time)
		} else {
			builder = builder.Set("due_date", nil)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes the task. Comments are removed by foreign key cascade.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) listTasks(ctx context.Context, query string, arg int64, funcName string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task                                       models.Task
		assigneeID, reviewerID, createdBy          sql.NullInt64
		assigneeEmail, assigneeFirst, assigneeLast sql.NullString
		reviewerEmail, reviewerFirst, reviewerLast sql.NullString
		dueDate                                    sql.NullTime
	)

	err := row.Scan(
		&task.TaskID, &task.BoardID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&assigneeID, &assigneeEmail, &assigneeFirst, &assigneeLast,
		&reviewerID, &reviewerEmail, &reviewerFirst, &reviewerLast,
		&dueDate, &createdBy,
		&task.CommentsCount,
	)
	if err != nil {
		return models.Task{}, err
	}

	if assigneeID.Valid {
		task.AssigneeID = &assigneeID.Int64
		task.Assignee = &models.UserInfo{
			ID:       assigneeID.Int64,
			Email:    assigneeEmail.String,
			Fullname: assigneeFirst.String + " " + assigneeLast.String,
		}
	}
	if reviewerID.Valid {
		task.ReviewerID = &reviewerID.Int64
		task.Reviewer = &models.UserInfo{
			ID:       reviewerID.Int64,
			Email:    reviewerEmail.String,
			Fullname: reviewerFirst.String + " " + reviewerLast.String,
		}
	}
	if createdBy.Valid {
		task.CreatedByID = &createdBy.Int64
	}
	if dueDate.Valid {
		task.DueDate = &models.Date{Time: dueDate.Time}
	}

	return task, nil
}
