package http

import (
	"net/http"

	"advocate-directory/internal/delivery/http/handler"
	"advocate-directory/internal/delivery/http/middleware"
	"advocate-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	advocateHandler      *handler.AdvocateHandler
	corsMiddleware       *middleware.CORSMiddleware
	requestLogMiddleware *middleware.RequestLogMiddleware
}

func NewRouter(
	advocateHandler *handler.AdvocateHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogMiddleware *middleware.RequestLogMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		advocateHandler:      advocateHandler,
		corsMiddleware:       corsMiddleware,
		requestLogMiddleware: requestLogMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Unversioned path kept for existing clients
	r.router.HandleFunc("/api/advocates", r.advocateHandler.Search).Methods(http.MethodGet, http.MethodOptions)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory (public, read-only)
	api.HandleFunc("/advocates", r.advocateHandler.Search).Methods(http.MethodGet, http.MethodOptions)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, "")
	})

	// Add middlewares
	r.router.Use(r.requestLogMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
