package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/internal/utils"
)

func (h *Handler) initiateTwoFASetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.initiateTwoFASetup").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	setup, err := h.services.TwoFAService.InitiateSetup(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrTwoFAAlreadyEnabled) {
			log.Err(err).Msg("two-factor authentication already enabled")
			http.Error(w, "two-factor authentication already enabled", http.StatusConflict)
			return
		}
		log.Err(err).Str("func", "*Handler.initiateTwoFASetup").Msg("error initiating two-factor setup")
		http.Error(w, "error initiating two-factor setup", statusFromError(err))
		return
	}

	utils.WriteJSON(w, setup, http.StatusOK)
}

func (h *Handler) confirmTwoFASetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.confirmTwoFASetup").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req twoFAConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.TwoFAService.ConfirmSetup(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrTwoFASetupNotInitiated):
			log.Err(err).Msg("two-factor setup was not initiated")
			http.Error(w, "two-factor setup was not initiated", http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			log.Err(err).Msg("wrong two-factor code")
			http.Error(w, "invalid code", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.confirmTwoFASetup").Msg("error confirming two-factor setup")
			http.Error(w, "error confirming two-factor setup", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) disableTwoFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.disableTwoFA").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req twoFADisableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.TwoFAService.Disable(ctx, userID, req.Password, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrTwoFANotEnabled):
			log.Err(err).Msg("two-factor authentication is not enabled")
			http.Error(w, "two-factor authentication is not enabled", http.StatusConflict)
			return
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInvalidTwoFactorCode):
			log.Err(err).Msg("re-authentication failed")
			http.Error(w, "re-authentication failed", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.disableTwoFA").Msg("error disabling two-factor authentication")
			http.Error(w, "error disabling two-factor authentication", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
