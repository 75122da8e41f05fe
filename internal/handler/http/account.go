package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/internal/utils"
)

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.changePassword").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("new password rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong current password")
			http.Error(w, "wrong current password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.changePassword").Msg("error changing password")
			http.Error(w, "error changing password", statusFromError(err))
			return
		}
	}

	// every session was invalidated, the client has to log in again
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requestAccountDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.requestAccountDeletion").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req deleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.RequestDeletion(ctx, userID, req.Password); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			log.Err(err).Msg("wrong password")
			http.Error(w, "wrong password", http.StatusUnauthorized)
			return
		}
		log.Err(err).Str("func", "*Handler.requestAccountDeletion").Msg("error scheduling account deletion")
		http.Error(w, "error scheduling account deletion", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cancelAccountDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.cancelAccountDeletion").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AccountService.CancelDeletion(ctx, userID); err != nil {
		if errors.Is(err, service.ErrAccountNotDeleted) {
			log.Err(err).Msg("account is not scheduled for deletion")
			http.Error(w, "account is not scheduled for deletion", http.StatusConflict)
			return
		}
		log.Err(err).Str("func", "*Handler.cancelAccountDeletion").Msg("error cancelling account deletion")
		http.Error(w, "error cancelling account deletion", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
