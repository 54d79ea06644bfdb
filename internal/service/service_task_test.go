package service

import (
	"context"
	"testing"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/mock"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (TaskService, *mock.MockTaskRepository, *mock.MockBoardRepository) {
	t.Helper()
	tasks := mock.NewMockTaskRepository(ctrl)
	boards := mock.NewMockBoardRepository(ctrl)
	return NewTaskService(tasks, boards, logger.NewLogger("test")), tasks, boards
}

func ptrInt64(v int64) *int64 { return &v }

func TestTaskService_CreateTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	req := models.TaskCreateRequest{
		Board:      10,
		Title:      "Fix login",
		Status:     models.StatusToDo,
		Priority:   models.PriorityHigh,
		AssigneeID: ptrInt64(2),
	}

	boards.EXPECT().GetBoard(ctx, int64(10)).Return(models.Board{BoardID: 10, OwnerID: 1}, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(1)).Return(true, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(2)).Return(true, nil)
	tasks.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			require.NotNil(t, task.CreatedByID)
			assert.Equal(t, int64(1), *task.CreatedByID)
			task.TaskID = 5
			return task, nil
		},
	)

	created, err := svc.CreateTask(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.TaskID)
}

func TestTaskService_CreateTask_NotMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	boards.EXPECT().GetBoard(ctx, int64(10)).Return(models.Board{BoardID: 10, OwnerID: 1}, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(9)).Return(false, nil)

	_, err := svc.CreateTask(ctx, 9, models.TaskCreateRequest{Board: 10, Title: "x", Status: models.StatusToDo, Priority: models.PriorityLow})
	assert.ErrorIs(t, err, ErrNotBoardMember)
}

func TestTaskService_CreateTask_AssigneeNotMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	boards.EXPECT().GetBoard(ctx, int64(10)).Return(models.Board{BoardID: 10, OwnerID: 1}, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(1)).Return(true, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(42)).Return(false, nil)

	req := models.TaskCreateRequest{Board: 10, Title: "x", Status: models.StatusToDo, Priority: models.PriorityLow, AssigneeID: ptrInt64(42)}
	_, err := svc.CreateTask(ctx, 1, req)
	assert.ErrorIs(t, err, ErrAssigneeNotMember)
}

func TestTaskService_CreateTask_BoardMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	boards.EXPECT().GetBoard(ctx, int64(404)).Return(models.Board{}, store.ErrBoardNotFound)

	_, err := svc.CreateTask(ctx, 1, models.TaskCreateRequest{Board: 404, Title: "x", Status: models.StatusToDo, Priority: models.PriorityLow})
	assert.ErrorIs(t, err, store.ErrBoardNotFound)
}

func TestTaskService_UpdateTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	status := models.StatusDone
	req := models.TaskUpdateRequest{Status: &status}

	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10, Status: models.StatusReview}, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(2)).Return(true, nil)
	tasks.EXPECT().UpdateTask(ctx, int64(5), req).Return(nil)
	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10, Status: models.StatusDone}, nil)

	updated, err := svc.UpdateTask(ctx, 2, 5, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, updated.Status)
}

func TestTaskService_UpdateTask_ReviewerNotMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	req := models.TaskUpdateRequest{ReviewerID: models.Opt(int64(42))}

	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10}, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(2)).Return(true, nil)
	boards.EXPECT().IsMember(ctx, int64(10), int64(42)).Return(false, nil)

	_, err := svc.UpdateTask(ctx, 2, 5, req)
	assert.ErrorIs(t, err, ErrReviewerNotMember)
}

func TestTaskService_UpdateTask_ClearAssignee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	req := models.TaskUpdateRequest{AssigneeID: models.OptNull[int64]()}

	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10, AssigneeID: ptrInt64(2)}, nil)
	// only the requester's membership is checked; null is not a user ID
	boards.EXPECT().IsMember(ctx, int64(10), int64(2)).Return(true, nil)
	tasks.EXPECT().UpdateTask(ctx, int64(5), req).Return(nil)
	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10}, nil)

	updated, err := svc.UpdateTask(ctx, 2, 5, req)
	require.NoError(t, err)
	assert.Nil(t, updated.AssigneeID)
}

func TestTaskService_DeleteTask_CreatorAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10, CreatedByID: ptrInt64(2)}, nil)
	boards.EXPECT().GetBoard(ctx, int64(10)).Return(models.Board{BoardID: 10, OwnerID: 1}, nil)
	tasks.EXPECT().DeleteTask(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteTask(ctx, 2, 5))
}

func TestTaskService_DeleteTask_MemberForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, boards := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	tasks.EXPECT().GetTask(ctx, int64(5)).Return(models.Task{TaskID: 5, BoardID: 10, CreatedByID: ptrInt64(2)}, nil)
	boards.EXPECT().GetBoard(ctx, int64(10)).Return(models.Board{BoardID: 10, OwnerID: 1}, nil)

	err := svc.DeleteTask(ctx, 3, 5)
	assert.ErrorIs(t, err, ErrNotBoardOwnerOrTaskCreator)
}

func TestTaskService_ListAssignedTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, tasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	tasks.EXPECT().ListAssignedTasks(ctx, int64(2)).
		Return([]models.Task{{TaskID: 5, BoardID: 10, AssigneeID: ptrInt64(2)}}, nil)

	list, err := svc.ListAssignedTasks(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
