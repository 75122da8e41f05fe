package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/service"
)

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req emailTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EmailService.VerifyEmail(ctx, req.Token); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTokenInvalid):
			log.Err(err).Msg("verification token expired or invalid")
			http.Error(w, "verification token expired or invalid", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrEmailAlreadyVerified):
			log.Err(err).Msg("email already verified")
			http.Error(w, "email already verified", http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.verifyEmail").Msg("error verifying email")
			http.Error(w, "error verifying email", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// resendVerification always answers 202: whether the address exists is
// never revealed.
func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EmailService.ResendVerification(ctx, req.Email); err != nil {
		log.Err(err).Str("func", "*Handler.resendVerification").Msg("error resending verification mail")
		http.Error(w, "error resending verification mail", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// requestPasswordReset always answers 202: whether the address exists is
// never revealed.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EmailService.RequestPasswordReset(ctx, req.Email); err != nil {
		log.Err(err).Str("func", "*Handler.requestPasswordReset").Msg("error requesting password reset")
		http.Error(w, "error requesting password reset", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req passwordResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EmailService.ConfirmPasswordReset(ctx, req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("new password rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailTokenInvalid):
			log.Err(err).Msg("reset token expired or invalid")
			http.Error(w, "reset token expired or invalid", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.confirmPasswordReset").Msg("error confirming password reset")
			http.Error(w, "error confirming password reset", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
