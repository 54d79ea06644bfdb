package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("task create request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("board_id", req.Board).Msg("task creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, task.Response(), http.StatusCreated)
}

func (h *Handler) assignedTasks(w http.ResponseWriter, r *http.Request) {
	h.listUserTasks(w, r, h.services.TaskService.ListAssignedTasks)
}

func (h *Handler) reviewingTasks(w http.ResponseWriter, r *http.Request) {
	h.listUserTasks(w, r, h.services.TaskService.ListReviewingTasks)
}

func (h *Handler) listUserTasks(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID int64) ([]models.Task, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tasks, err := list(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("task listing failed")
		respondError(w, err)
		return
	}

	responses := make([]models.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, task.Response())
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := pathID(r, "taskID")
	if err != nil {
		utils.WriteError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req models.TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("task update request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, userID, taskID, req)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, task.Response(), http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := pathID(r, "taskID")
	if err != nil {
		utils.WriteError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
