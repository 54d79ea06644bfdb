package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with the author's
// full name resolved. A foreign key violation on the task reference maps
// to [ErrTaskNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment, comment.TaskID, comment.AuthorID, comment.Content)

	var commentID int64
	if err := row.Scan(&commentID); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: scanning error")

		if isForeignKeyViolation(err) {
			return models.Comment{}, ErrTaskNotFound
		}
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.GetComment(ctx, commentID)
}

// ListTaskComments returns every comment of the task in chronological order.
func (r *commentRepository) ListTaskComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommentsByTask, taskID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListTaskComments").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.CommentID, &comment.TaskID, &comment.AuthorID, &comment.Content, &comment.CreatedAt, &comment.AuthorName); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListTaskComments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// GetComment retrieves a single comment with the author's name resolved.
func (r *commentRepository) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var comment models.Comment
	row := r.db.QueryRowContext(ctx, findCommentByID, commentID)
	if err := row.Scan(&comment.CommentID, &comment.TaskID, &comment.AuthorID, &comment.Content, &comment.CreatedAt, &comment.AuthorName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error: scanning error")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// DeleteComment removes the comment.
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
