package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StephEngl/KanMind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/registration/", r.URL.Path)

		var req models.RegistrationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Token:    "issued-token",
			Fullname: req.Fullname,
			Email:    req.Email,
			UserID:   1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegistrationRequest{
		Fullname:         "Alice Smith",
		Email:            "alice@example.com",
		Password:         "x",
		RepeatedPassword: "x",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegistrationRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "login-token", UserID: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, "login-token", a.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email/password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Authenticated requests ──────────────────────────────────────────────────

func TestAuthedRequest_TokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.BoardSummary{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.ListBoards(context.Background())
	require.NoError(t, err)
}

func TestCheckEmail_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/email-check/", r.URL.Path)
		assert.Equal(t, "carol@example.com", r.URL.Query().Get("email"))
		writeJSON(t, w, http.StatusOK, models.UserInfo{ID: 5, Email: "carol@example.com", Fullname: "Carol Jones"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CheckEmail(context.Background(), "carol@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestCheckEmail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "no user was found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckEmail(context.Background(), "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Boards ──────────────────────────────────────────────────────────────────

func TestListBoards_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/boards/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.BoardSummary{{ID: 10, Title: "Sprint", OwnerID: 1}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListBoards(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sprint", got[0].Title)
}

func TestListBoards_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "user is not a member of any board"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListBoards(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateBoard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/boards/", r.URL.Path)

		var req models.BoardCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int64{2, 3}, req.Members)

		writeJSON(t, w, http.StatusCreated, models.BoardSummary{ID: 11, Title: req.Title, MemberCount: 2, OwnerID: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateBoard(context.Background(), models.BoardCreateRequest{Title: "Roadmap", Members: []int64{2, 3}})

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestGetBoard_PathFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/boards/10/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.BoardDetail{ID: 10, Title: "Sprint"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetBoard(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestDeleteBoard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/boards/10/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteBoard(context.Background(), 10))
}

// ── Tasks ───────────────────────────────────────────────────────────────────

func TestCreateTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/", r.URL.Path)

		var req models.TaskCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		writeJSON(t, w, http.StatusCreated, models.TaskResponse{ID: 30, Board: req.Board, Title: req.Title, Status: req.Status})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateTask(context.Background(), models.TaskCreateRequest{
		Board:    10,
		Title:    "Fix login",
		Status:   models.StatusToDo,
		Priority: models.PriorityHigh,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30), got.ID)
	assert.Equal(t, int64(10), got.Board)
}

func TestAssignedTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/assigned-to-me/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.TaskResponse{{ID: 30}, {ID: 31}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.AssignedTasks(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReviewingTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/reviewing/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.TaskResponse{{ID: 32}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ReviewingTasks(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateTask_PathAndMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/tasks/30/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TaskResponse{ID: 30, Status: models.StatusDone})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	status := models.StatusDone
	got, err := a.UpdateTask(context.Background(), 30, models.TaskUpdateRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status)
}

func TestDeleteTask_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "only the board owner or the task creator may delete a task"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteTask(context.Background(), 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Comments ────────────────────────────────────────────────────────────────

func TestListComments_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/30/comments/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.CommentResponse{{ID: 50, Author: "Bob Brown", Content: "Looks good"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListComments(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob Brown", got[0].Author)
}

func TestCreateComment_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks/30/comments/", r.URL.Path)

		var req models.CommentCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		writeJSON(t, w, http.StatusCreated, models.CommentResponse{ID: 51, Content: req.Content})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateComment(context.Background(), 30, models.CommentCreateRequest{Content: "Please rebase first"})

	require.NoError(t, err)
	assert.Equal(t, int64(51), got.ID)
}

func TestDeleteComment_PathFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/30/comments/50/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteComment(context.Background(), 30, 50))
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListBoards(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
