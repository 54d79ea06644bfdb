package service

import (
	"context"
	"fmt"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
)

// commentService is the concrete implementation of CommentService.
//
// Permission model: reading and writing comments requires membership of the
// task's board; deleting a comment is author-only.
type commentService struct {
	commentRepository store.CommentRepository
	taskRepository    store.TaskRepository
	boardRepository   store.BoardRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService over the given repositories.
func NewCommentService(comments store.CommentRepository, tasks store.TaskRepository, boards store.BoardRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: comments,
		taskRepository:    tasks,
		boardRepository:   boards,
		logger:            logger,
	}
}

// CreateComment attaches a comment by userID to the task.
func (c *commentService) CreateComment(ctx context.Context, userID, taskID int64, req models.CommentCreateRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := c.authorizeTaskAccess(ctx, userID, taskID); err != nil {
		return models.Comment{}, err
	}

	created, err := c.commentRepository.CreateComment(ctx, models.Comment{
		TaskID:   taskID,
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// ListComments returns the task's comments in chronological order.
func (c *commentService) ListComments(ctx context.Context, userID, taskID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := c.authorizeTaskAccess(ctx, userID, taskID); err != nil {
		return nil, err
	}

	comments, err := c.commentRepository.ListTaskComments(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("comment listing failed")
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment from the task. Author-only.
func (c *commentService) DeleteComment(ctx context.Context, userID, taskID, commentID int64) error {
	log := logger.FromContext(ctx)

	comment, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment lookup failed")
		return fmt.Errorf("comment lookup failed: %w", err)
	}

	// a comment reached through the wrong task URL does not exist there
	if comment.TaskID != taskID {
		return fmt.Errorf("comment lookup failed: %w", store.ErrCommentNotFound)
	}

	if comment.AuthorID != userID {
		return ErrNotCommentAuthor
	}

	if err := c.commentRepository.DeleteComment(ctx, commentID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}

// authorizeTaskAccess verifies the task exists and userID is a member of its
// board.
func (c *commentService) authorizeTaskAccess(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	task, err := c.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		return fmt.Errorf("task lookup failed: %w", err)
	}

	isMember, err := c.boardRepository.IsMember(ctx, task.BoardID, userID)
	if err != nil {
		return fmt.Errorf("board membership check failed: %w", err)
	}
	if !isMember {
		return ErrNotBoardMember
	}

	return nil
}
