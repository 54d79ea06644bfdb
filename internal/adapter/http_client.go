package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/StephEngl/KanMind/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the KanMind REST
// protocol.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/registration/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/login/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) CheckEmail(ctx context.Context, email string) (models.UserInfo, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", email).
		Get("/api/email-check/")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("email-check request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	var info models.UserInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("decode email-check response: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) ListBoards(ctx context.Context) ([]models.BoardSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/boards/")
	if err != nil {
		return nil, fmt.Errorf("list boards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var boards []models.BoardSummary
	if err = json.Unmarshal(resp.Body(), &boards); err != nil {
		return nil, fmt.Errorf("decode boards response: %w", err)
	}
	return boards, nil
}

func (h *httpServerAdapter) CreateBoard(ctx context.Context, req models.BoardCreateRequest) (models.BoardSummary, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/boards/")
	if err != nil {
		return models.BoardSummary{}, fmt.Errorf("create board request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BoardSummary{}, err
	}

	var board models.BoardSummary
	if err = json.Unmarshal(resp.Body(), &board); err != nil {
		return models.BoardSummary{}, fmt.Errorf("decode create board response: %w", err)
	}
	return board, nil
}

func (h *httpServerAdapter) GetBoard(ctx context.Context, boardID int64) (models.BoardDetail, error) {
	resp, err := h.authedRequest(ctx).Get(boardPath(boardID))
	if err != nil {
		return models.BoardDetail{}, fmt.Errorf("get board request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BoardDetail{}, err
	}

	var board models.BoardDetail
	if err = json.Unmarshal(resp.Body(), &board); err != nil {
		return models.BoardDetail{}, fmt.Errorf("decode board response: %w", err)
	}
	return board, nil
}

func (h *httpServerAdapter) UpdateBoard(ctx context.Context, boardID int64, req models.BoardUpdateRequest) (models.BoardUpdated, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch(boardPath(boardID))
	if err != nil {
		return models.BoardUpdated{}, fmt.Errorf("update board request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BoardUpdated{}, err
	}

	var board models.BoardUpdated
	if err = json.Unmarshal(resp.Body(), &board); err != nil {
		return models.BoardUpdated{}, fmt.Errorf("decode update board response: %w", err)
	}
	return board, nil
}

func (h *httpServerAdapter) DeleteBoard(ctx context.Context, boardID int64) error {
	resp, err := h.authedRequest(ctx).Delete(boardPath(boardID))
	if err != nil {
		return fmt.Errorf("delete board request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, req models.TaskCreateRequest) (models.TaskResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/tasks/")
	if err != nil {
		return models.TaskResponse{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskResponse{}, err
	}

	var task models.TaskResponse
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.TaskResponse{}, fmt.Errorf("decode create task response: %w", err)
	}
	return task, nil
}

func (h *httpServerAdapter) AssignedTasks(ctx context.Context) ([]models.TaskResponse, error) {
	return h.taskList(ctx, "/api/tasks/assigned-to-me/")
}

func (h *httpServerAdapter) ReviewingTasks(ctx context.Context) ([]models.TaskResponse, error) {
	return h.taskList(ctx, "/api/tasks/reviewing/")
}

func (h *httpServerAdapter) taskList(ctx context.Context, path string) ([]models.TaskResponse, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("task list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.TaskResponse
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode task list response: %w", err)
	}
	return tasks, nil
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, req models.TaskUpdateRequest) (models.TaskResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch(taskPath(taskID))
	if err != nil {
		return models.TaskResponse{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskResponse{}, err
	}

	var task models.TaskResponse
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.TaskResponse{}, fmt.Errorf("decode update task response: %w", err)
	}
	return task, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	resp, err := h.authedRequest(ctx).Delete(taskPath(taskID))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListComments(ctx context.Context, taskID int64) ([]models.CommentResponse, error) {
	resp, err := h.authedRequest(ctx).Get(commentsPath(taskID))
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var comments []models.CommentResponse
	if err = json.Unmarshal(resp.Body(), &comments); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}
	return comments, nil
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, taskID int64, req models.CommentCreateRequest) (models.CommentResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(commentsPath(taskID))
	if err != nil {
		return models.CommentResponse{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommentResponse{}, err
	}

	var comment models.CommentResponse
	if err = json.Unmarshal(resp.Body(), &comment); err != nil {
		return models.CommentResponse{}, fmt.Errorf("decode create comment response: %w", err)
	}
	return comment, nil
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, taskID, commentID int64) error {
	resp, err := h.authedRequest(ctx).Delete(commentsPath(taskID) + strconv.FormatInt(commentID, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Token "+token)
	}
	return req
}

func boardPath(boardID int64) string {
	return "/api/boards/" + strconv.FormatInt(boardID, 10) + "/"
}

func taskPath(taskID int64) string {
	return "/api/tasks/" + strconv.FormatInt(taskID, 10) + "/"
}

func commentsPath(taskID int64) string {
	return "/api/tasks/" + strconv.FormatInt(taskID, 10) + "/comments/"
}
