package http

import (
	"encoding/json"
	"net/http"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
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

	comments, err := h.services.CommentService.ListComments(ctx, userID, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("comment listing failed")
		respondError(w, err)
		return
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, comment.Response())
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
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

	var req models.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("comment create request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, userID, taskID, req)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("comment creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, comment.Response(), http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
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

	commentID, err := pathID(r, "commentID")
	if err != nil {
		utils.WriteError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, userID, taskID, commentID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
