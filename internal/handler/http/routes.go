package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/2fa/verify", h.verifyTwoFactor)
		r.Post("/api/auth/refresh", h.refresh)

		r.Post("/api/auth/email/verify", h.verifyEmail)
		r.Post("/api/auth/email/resend", h.resendVerification)
		r.Post("/api/auth/password/reset", h.requestPasswordReset)
		r.Post("/api/auth/password/reset/confirm", h.confirmPasswordReset)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/sessions", h.listSessions)
		r.Delete("/api/auth/sessions", h.revokeAllSessions)
		r.Delete("/api/auth/sessions/{sessionID}", h.revokeSession)

		r.Post("/api/auth/2fa/setup", h.initiateTwoFASetup)
		r.Post("/api/auth/2fa/confirm", h.confirmTwoFASetup)
		r.Post("/api/auth/2fa/disable", h.disableTwoFA)

		r.Post("/api/auth/password/change", h.changePassword)
		r.Post("/api/account/delete", h.requestAccountDeletion)
		r.Post("/api/account/delete/cancel", h.cancelAccountDeletion)
	})

	// admin-only surface
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAdmin)

		r.Get("/api/admin/security-events", h.listSecurityEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
