package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBoards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	summaries, err := h.services.BoardService.ListBoards(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("board listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) createBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BoardCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("board create request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.services.BoardService.CreateBoard(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("board creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusCreated)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	boardID, err := pathID(r, "boardID")
	if err != nil {
		utils.WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	detail, err := h.services.BoardService.GetBoard(ctx, userID, boardID)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) updateBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	boardID, err := pathID(r, "boardID")
	if err != nil {
		utils.WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	var req models.BoardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("board update request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.BoardService.UpdateBoard(ctx, userID, boardID, req)
	if err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	boardID, err := pathID(r, "boardID")
	if err != nil {
		utils.WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	if err := h.services.BoardService.DeleteBoard(ctx, userID, boardID); err != nil {
		log.Err(err).Int64("board_id", boardID).Msg("board deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the named chi URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
