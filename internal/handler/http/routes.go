package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// registered before the subrouters so they inherit it
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// JSON API
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/signup", h.signup)
			r.Post("/change-password", h.changePassword)
			r.Post("/forget-password", h.forgetPassword)
			r.Post("/reset-mfa", h.resetMFA)
			r.Post("/authorize/{username}", h.toggleAuthorization)
			r.Delete("/discard/{username}", h.discardUser)
			r.Post("/user-data", h.userData)
		})
		r.Route("/mfa", func(r chi.Router) {
			r.Get("/enroll", h.mfaEnroll)
			r.Post("/setup", h.mfaSetup)
			r.Post("/validate", h.mfaValidate)
		})
	})

	// emailed self-service links
	router.Group(func(r chi.Router) {
		r.Get("/confirm/{token}", h.confirmSignup)
		r.Get("/confirm-password/{token}", h.confirmPasswordForm)
		r.Post("/confirm-password/{token}", h.confirmPassword)
		r.Get("/confirm-mfa-reset/{token}", h.confirmMFAReset)
	})

	// peer-service endpoints
	router.Group(func(r chi.Router) {
		r.Post("/deauthorize", h.deauthorize)
		r.Get("/native-user-info", h.userInfo)
	})

	return router
}
