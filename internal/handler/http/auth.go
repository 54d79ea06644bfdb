package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/service"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
)

func (h *Handler) registration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("registration request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		respondError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token:    token.SignedString,
		Fullname: registeredUser.FullName(),
		Email:    registeredUser.Email,
		UserID:   registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			// unknown account and wrong password look identical to the client
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token:    token.SignedString,
		Fullname: foundUser.FullName(),
		Email:    foundUser.Email,
		UserID:   foundUser.UserID,
	}, http.StatusOK)
}

func (h *Handler) emailCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if err := h.validator.Validate(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("email-check query failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := h.services.AuthService.CheckEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("email-check failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
