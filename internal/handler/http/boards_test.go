package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StephEngl/KanMind/internal/service"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock BoardService
// ─────────────────────────────────────────────

type mockBoardService struct {
	createFn func(ctx context.Context, userID int64, req models.BoardCreateRequest) (models.BoardSummary, error)
	listFn   func(ctx context.Context, userID int64) ([]models.BoardSummary, error)
	getFn    func(ctx context.Context, userID, boardID int64) (models.BoardDetail, error)
	updateFn func(ctx context.Context, userID, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error)
	deleteFn func(ctx context.Context, userID, boardID int64) error
}

func (m *mockBoardService) CreateBoard(ctx context.Context, userID int64, req models.BoardCreateRequest) (models.BoardSummary, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockBoardService) ListBoards(ctx context.Context, userID int64) ([]models.BoardSummary, error) {
	return m.listFn(ctx, userID)
}

func (m *mockBoardService) GetBoard(ctx context.Context, userID, boardID int64) (models.BoardDetail, error) {
	return m.getFn(ctx, userID, boardID)
}

func (m *mockBoardService) UpdateBoard(ctx context.Context, userID, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error) {
	return m.updateFn(ctx, userID, boardID, req)
}

func (m *mockBoardService) DeleteBoard(ctx context.Context, userID, boardID int64) error {
	return m.deleteFn(ctx, userID, boardID)
}

func newHandlerWithBoards(t *testing.T, boards service.BoardService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{BoardService: boards})
}

// ─────────────────────────────────────────────
// listBoards
// ─────────────────────────────────────────────

// TestListBoards_Success verifies that the boards of the authenticated user
// are returned as summaries with 200 OK.
func TestListBoards_Success(t *testing.T) {
	boards := &mockBoardService{
		listFn: func(_ context.Context, userID int64) ([]models.BoardSummary, error) {
			assert.Equal(t, int64(1), userID)
			return []models.BoardSummary{
				{ID: 10, Title: "Sprint", MemberCount: 2, TicketCount: 5, OwnerID: 1},
			}, nil
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodGet, "/api/boards/", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.listBoards(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.BoardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Sprint", got[0].Title)
	assert.Equal(t, 5, got[0].TicketCount)
}

// TestListBoards_NoMembership verifies that a user without any board gets
// 403 Forbidden.
func TestListBoards_NoMembership(t *testing.T) {
	boards := &mockBoardService{
		listFn: func(_ context.Context, _ int64) ([]models.BoardSummary, error) {
			return nil, service.ErrNoBoardMembership
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodGet, "/api/boards/", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.listBoards(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestListBoards_NoUserInContext verifies that a request without an
// authenticated user results in 401 Unauthorized.
func TestListBoards_NoUserInContext(t *testing.T) {
	h := newHandlerWithBoards(t, &mockBoardService{})
	req := httptest.NewRequest(http.MethodGet, "/api/boards/", nil)
	rec := httptest.NewRecorder()

	h.listBoards(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// createBoard
// ─────────────────────────────────────────────

// TestCreateBoard_Success verifies that a valid creation request results in
// 201 Created with the new board's summary.
func TestCreateBoard_Success(t *testing.T) {
	boards := &mockBoardService{
		createFn: func(_ context.Context, userID int64, req models.BoardCreateRequest) (models.BoardSummary, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "Roadmap", req.Title)
			return models.BoardSummary{ID: 11, Title: req.Title, MemberCount: 2, OwnerID: userID}, nil
		},
	}

	h := newHandlerWithBoards(t, boards)
	body := models.BoardCreateRequest{Title: "Roadmap", Members: []int64{2, 3}}
	req := httptest.NewRequest(http.MethodPost, "/api/boards/", encodeBody(t, body)).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createBoard(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.BoardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(11), got.ID)
}

// TestCreateBoard_EmptyTitle verifies that the validator rejects a board
// without a title with 400 Bad Request.
func TestCreateBoard_EmptyTitle(t *testing.T) {
	h := newHandlerWithBoards(t, &mockBoardService{})
	body := models.BoardCreateRequest{Members: []int64{2}}
	req := httptest.NewRequest(http.MethodPost, "/api/boards/", encodeBody(t, body)).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createBoard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

// TestCreateBoard_UnknownMember verifies that store.ErrUnknownMember maps to
// 400 Bad Request.
func TestCreateBoard_UnknownMember(t *testing.T) {
	boards := &mockBoardService{
		createFn: func(_ context.Context, _ int64, _ models.BoardCreateRequest) (models.BoardSummary, error) {
			return models.BoardSummary{}, store.ErrUnknownMember
		},
	}

	h := newHandlerWithBoards(t, boards)
	body := models.BoardCreateRequest{Title: "Roadmap", Members: []int64{999}}
	req := httptest.NewRequest(http.MethodPost, "/api/boards/", encodeBody(t, body)).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createBoard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown member user id")
}

// ─────────────────────────────────────────────
// getBoard
// ─────────────────────────────────────────────

// TestGetBoard_Success verifies that a member can request a board's detail
// view and receives 200 OK.
func TestGetBoard_Success(t *testing.T) {
	boards := &mockBoardService{
		getFn: func(_ context.Context, userID, boardID int64) (models.BoardDetail, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(10), boardID)
			return models.BoardDetail{
				ID:      boardID,
				Title:   "Sprint",
				OwnerID: 1,
				Members: []models.UserInfo{{ID: 2, Email: "bob@example.com", Fullname: "Bob Brown"}},
				Tasks:   []models.BoardTask{{ID: 30, Title: "Fix login"}},
			}, nil
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodGet, "/api/boards/10/", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.getBoard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.BoardDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.ID)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Fix login", got.Tasks[0].Title)
}

// TestGetBoard_InvalidID verifies that a non-numeric board id results in
// 400 Bad Request.
func TestGetBoard_InvalidID(t *testing.T) {
	h := newHandlerWithBoards(t, &mockBoardService{})
	req := httptest.NewRequest(http.MethodGet, "/api/boards/abc/", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "abc")
	rec := httptest.NewRecorder()

	h.getBoard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetBoard_Forbidden verifies that service.ErrNotBoardMember maps to
// 403 Forbidden.
func TestGetBoard_Forbidden(t *testing.T) {
	boards := &mockBoardService{
		getFn: func(_ context.Context, _, _ int64) (models.BoardDetail, error) {
			return models.BoardDetail{}, service.ErrNotBoardMember
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodGet, "/api/boards/10/", nil).WithContext(ctxWithUser(9))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.getBoard(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestGetBoard_NotFound verifies that store.ErrBoardNotFound maps to
// 404 Not Found.
func TestGetBoard_NotFound(t *testing.T) {
	boards := &mockBoardService{
		getFn: func(_ context.Context, _, _ int64) (models.BoardDetail, error) {
			return models.BoardDetail{}, store.ErrBoardNotFound
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodGet, "/api/boards/404/", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "404")
	rec := httptest.NewRecorder()

	h.getBoard(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateBoard
// ─────────────────────────────────────────────

// TestUpdateBoard_Success verifies that a title change results in 200 OK with
// the expanded owner and member data.
func TestUpdateBoard_Success(t *testing.T) {
	newTitle := "Renamed"

	boards := &mockBoardService{
		updateFn: func(_ context.Context, userID, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(10), boardID)
			require.NotNil(t, req.Title)
			return models.BoardUpdated{
				ID:        boardID,
				Title:     *req.Title,
				OwnerData: models.UserInfo{ID: 1, Fullname: "Alice Smith"},
			}, nil
		},
	}

	h := newHandlerWithBoards(t, boards)
	body := models.BoardUpdateRequest{Title: &newTitle}
	req := httptest.NewRequest(http.MethodPatch, "/api/boards/10/", encodeBody(t, body)).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.updateBoard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.BoardUpdated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, int64(1), got.OwnerData.ID)
}

// TestUpdateBoard_NoFields verifies that a patch with no fields set is
// rejected with 400 Bad Request.
func TestUpdateBoard_NoFields(t *testing.T) {
	h := newHandlerWithBoards(t, &mockBoardService{})
	req := httptest.NewRequest(http.MethodPatch, "/api/boards/10/", encodeBody(t, models.BoardUpdateRequest{})).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.updateBoard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// deleteBoard
// ─────────────────────────────────────────────

// TestDeleteBoard_Success verifies that the owner can delete a board and
// receives 204 No Content with an empty body.
func TestDeleteBoard_Success(t *testing.T) {
	boards := &mockBoardService{
		deleteFn: func(_ context.Context, userID, boardID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(10), boardID)
			return nil
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodDelete, "/api/boards/10/", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.deleteBoard(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestDeleteBoard_NotOwner verifies that service.ErrNotBoardOwner maps to
// 403 Forbidden.
func TestDeleteBoard_NotOwner(t *testing.T) {
	boards := &mockBoardService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return errors.Join(errors.New("board deletion rejected"), service.ErrNotBoardOwner)
		},
	}

	h := newHandlerWithBoards(t, boards)
	req := httptest.NewRequest(http.MethodDelete, "/api/boards/10/", nil).WithContext(ctxWithUser(2))
	req = withURLParam(req, "boardID", "10")
	rec := httptest.NewRecorder()

	h.deleteBoard(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
