package http

import (
	"errors"
	"net/http"

	"github.com/StephEngl/KanMind/internal/service"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrNoBoardMembership:          http.StatusForbidden,
	service.ErrNotBoardMember:             http.StatusForbidden,
	service.ErrNotBoardOwner:              http.StatusForbidden,
	service.ErrNotBoardOwnerOrTaskCreator: http.StatusForbidden,
	service.ErrNotCommentAuthor:           http.StatusForbidden,

	service.ErrAssigneeNotMember: http.StatusBadRequest,
	service.ErrReviewerNotMember: http.StatusBadRequest,

	// duplicate registration answers 400, matching the frontend contract
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUnknownMember:      http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBoardNotFound:      http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrCommentNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to a status code and writes the uniform JSON error
// body. Internal errors never leak their message to the client.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	utils.WriteError(w, unwrapMessage(err), status)
}

// unwrapMessage digs out the innermost error so clients see the sentinel
// message, not the call-site wrapping around it.
func unwrapMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
