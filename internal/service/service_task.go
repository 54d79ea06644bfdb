package service

import (
	"context"
	"fmt"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
)

// taskService is the concrete implementation of TaskService.
//
// Permission model: creating and editing a task requires membership of the
// task's board; deleting a task requires being the board owner or the task's
// creator. Assignee and reviewer, when set, must themselves be members.
type taskService struct {
	taskRepository  store.TaskRepository
	boardRepository store.BoardRepository
	logger          *logger.Logger
}

// NewTaskService constructs a TaskService over the given repositories.
func NewTaskService(tasks store.TaskRepository, boards store.BoardRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository:  tasks,
		boardRepository: boards,
		logger:          logger,
	}
}

// CreateTask creates a task on the requested board.
func (t *taskService) CreateTask(ctx context.Context, userID int64, req models.TaskCreateRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if _, err := t.boardRepository.GetBoard(ctx, req.Board); err != nil {
		log.Err(err).Int64("board_id", req.Board).Msg("board lookup failed")
		return models.Task{}, fmt.Errorf("board lookup failed: %w", err)
	}

	if err := t.requireMembership(ctx, req.Board, userID, ErrNotBoardMember); err != nil {
		return models.Task{}, err
	}

	if req.AssigneeID != nil {
		if err := t.requireMembership(ctx, req.Board, *req.AssigneeID, ErrAssigneeNotMember); err != nil {
			return models.Task{}, err
		}
	}
	if req.ReviewerID != nil {
		if err := t.requireMembership(ctx, req.Board, *req.ReviewerID, ErrReviewerNotMember); err != nil {
			return models.Task{}, err
		}
	}

	created, err := t.taskRepository.CreateTask(ctx, models.Task{
		BoardID:     req.Board,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
		DueDate:     req.DueDate,
		CreatedByID: &userID,
	})
	if err != nil {
		log.Err(err).Int64("board_id", req.Board).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// ListAssignedTasks returns every task assigned to the user.
func (t *taskService) ListAssignedTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := t.taskRepository.ListAssignedTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assigned tasks lookup failed: %w", err)
	}
	return tasks, nil
}

// ListReviewingTasks returns every task the user reviews.
func (t *taskService) ListReviewingTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := t.taskRepository.ListReviewingTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reviewing tasks lookup failed: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task. The board of a task never
// changes.
func (t *taskService) UpdateTask(ctx context.Context, userID, taskID int64, req models.TaskUpdateRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	if err := t.requireMembership(ctx, task.BoardID, userID, ErrNotBoardMember); err != nil {
		return models.Task{}, err
	}

	// an explicit null clears the field, so only a concrete ID needs the
	// membership check
	if req.AssigneeID.Set && req.AssigneeID.Value != nil {
		if err := t.requireMembership(ctx, task.BoardID, *req.AssigneeID.Value, ErrAssigneeNotMember); err != nil {
			return models.Task{}, err
		}
	}
	if req.ReviewerID.Set && req.ReviewerID.Value != nil {
		if err := t.requireMembership(ctx, task.BoardID, *req.ReviewerID.Value, ErrReviewerNotMember); err != nil {
			return models.Task{}, err
		}
	}

	if err := t.taskRepository.UpdateTask(ctx, taskID, req); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	updated, err := t.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a task. Allowed for the board owner and the user who
// created the task.
func (t *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		return fmt.Errorf("task lookup failed: %w", err)
	}

	board, err := t.boardRepository.GetBoard(ctx, task.BoardID)
	if err != nil {
		return fmt.Errorf("board lookup failed: %w", err)
	}

	isCreator := task.CreatedByID != nil && *task.CreatedByID == userID
	if board.OwnerID != userID && !isCreator {
		return ErrNotBoardOwnerOrTaskCreator
	}

	if err := t.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

func (t *taskService) requireMembership(ctx context.Context, boardID, userID int64, notMemberErr error) error {
	isMember, err := t.boardRepository.IsMember(ctx, boardID, userID)
	if err != nil {
		return fmt.Errorf("board membership check failed: %w", err)
	}
	if !isMember {
		return notMemberErr
	}
	return nil
}
