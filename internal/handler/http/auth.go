// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrCredentialTaken):
			log.Err(err).Msg("username or email already taken")
			http.Error(w, "username or email already taken", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser.Summary(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req.Email, req.Password, r.RemoteAddr, r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			log.Err(err).Msg("too many failed login attempts")
			w.Header().Set("Retry-After", "60")
			http.Error(w, "too many failed login attempts", http.StatusTooManyRequests)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req twoFAVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.VerifyTwoFactor(ctx, req.UserID, req.Code, r.RemoteAddr, r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTwoFALockout):
			log.Err(err).Msg("two-factor attempts exhausted")
			http.Error(w, "too many failed codes, log in again", http.StatusTooManyRequests)
			return
		case errors.Is(err, service.ErrTwoFAChallengeExpired):
			log.Err(err).Msg("no pending two-factor challenge")
			http.Error(w, "challenge expired, log in again", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			log.Err(err).Msg("wrong two-factor code")
			http.Error(w, "invalid code", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during two-factor verification")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionRevoked):
			log.Err(err).Msg("session revoked")
			http.Error(w, "session revoked", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
			log.Err(err).Msg("refresh token expired or invalid")
			http.Error(w, "refresh token expired or invalid", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, found := utils.GetClaimsFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.logout").Msg("no access claims in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, claims.SessionID); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error invalidating session")
		http.Error(w, "error invalidating session", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listSessions").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	claims, _ := utils.GetClaimsFromContext(ctx)

	sessions, err := h.services.AuthService.ListSessions(ctx, userID, claims.SessionID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSessions").Msg("error listing sessions")
		http.Error(w, "error listing sessions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.revokeSession").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RevokeSession(ctx, userID, sessionID); err != nil {
		log.Err(err).Str("func", "*Handler.revokeSession").Msg("error revoking session")
		http.Error(w, "error revoking session", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revokeAllSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.revokeAllSessions").Msg("no user ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.RevokeAllSessions(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.revokeAllSessions").Msg("error revoking sessions")
		http.Error(w, "error revoking sessions", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
