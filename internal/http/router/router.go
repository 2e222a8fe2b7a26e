package router

import (
	"net/http"

	"glutools-directory/internal/db"
	"glutools-directory/internal/http/handlers"
	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
	"glutools-directory/internal/security"

	"github.com/gorilla/mux"
)

type Options struct {
	// Prefix is prepended to every route, e.g. "/make-server-291b20a9".
	Prefix string
	// APIKey, when set, must be sent as a bearer token on every request
	// except the health check.
	APIKey         string
	AllowedOrigin  string
	MaxUploadBytes int64
	// Catalog is the tool list added by POST /bulk-import-tools.
	Catalog []models.AITool
}

func Setup(store db.KeyValueStore, sessionStore *security.SessionStore, opts Options) http.Handler {
	r := mux.NewRouter()
	api := r
	if opts.Prefix != "" {
		api = r.PathPrefix(opts.Prefix).Subrouter()
	}

	// Initialize repositories
	subjects := repository.NewSubjects(store)
	tools := repository.NewTools(store)
	reviews := repository.NewReviews(store)
	uploads := repository.NewUploads(store)
	contacts := repository.NewContacts(store)
	admins := repository.NewAdmins(store, security.HashPassword)
	gate := security.NewGate(admins)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(gate, sessionStore)
	adminHandler := handlers.NewAdminHandler(admins, gate)
	catalogHandler := handlers.NewCatalogHandler(subjects, tools, opts.Catalog)
	reviewHandler := handlers.NewReviewHandler(reviews)
	fileHandler := handlers.NewFileHandler(uploads, opts.MaxUploadBytes)
	contactHandler := handlers.NewContactHandler(contacts)

	admin := func(h http.HandlerFunc) http.Handler {
		return authHandler.RequireAdmin(h)
	}

	api.HandleFunc("/health", handlers.Health).Methods("GET")

	api.HandleFunc("/subjects", catalogHandler.ListSubjects).Methods("GET")
	api.HandleFunc("/ai-tools", catalogHandler.ListTools).Methods("GET")
	api.HandleFunc("/ai-tools/{subjectId}", catalogHandler.ListToolsBySubject).Methods("GET")
	api.Handle("/ai-tools", admin(catalogHandler.CreateTool)).Methods("POST")
	api.Handle("/ai-tools/{id}", admin(catalogHandler.UpdateTool)).Methods("PUT")
	api.Handle("/ai-tools/{id}", admin(catalogHandler.DeleteTool)).Methods("DELETE")
	api.HandleFunc("/search", catalogHandler.Search).Methods("GET")
	api.Handle("/bulk-import-tools", admin(catalogHandler.BulkImport)).Methods("POST")

	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST")
	api.Handle("/contact-submissions", admin(contactHandler.List)).Methods("GET")

	api.HandleFunc("/reviews", reviewHandler.Create).Methods("POST")
	api.Handle("/reviews", admin(reviewHandler.ListAll)).Methods("GET")
	api.HandleFunc("/reviews/{toolId}", reviewHandler.ListForTool).Methods("GET")
	api.HandleFunc("/reviews/{reviewId}/helpful", reviewHandler.MarkHelpful).Methods("POST")
	api.Handle("/reviews/{reviewId}", admin(reviewHandler.Delete)).Methods("DELETE")

	api.HandleFunc("/uploads", fileHandler.UploadFile).Methods("POST")
	api.Handle("/uploads", admin(fileHandler.ListFiles)).Methods("GET")
	api.HandleFunc("/uploads/{toolId}", fileHandler.ListForTool).Methods("GET")
	api.Handle("/uploads/{uploadId}", admin(fileHandler.DeleteFile)).Methods("DELETE")

	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.Handle("/auth/me", admin(authHandler.Me)).Methods("GET")

	api.Handle("/admins", admin(adminHandler.List)).Methods("GET")
	api.Handle("/admins", admin(adminHandler.Create)).Methods("POST")
	api.Handle("/admins/{id}", admin(adminHandler.Update)).Methods("PUT")
	api.Handle("/admins/{id}", admin(adminHandler.Delete)).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	var h http.Handler = r
	h = requireAPIKey(h, opts.APIKey, opts.Prefix+"/health")
	h = setCORSHeaders(h, opts.AllowedOrigin)
	h = loggingMiddleware(h)
	return h
}
