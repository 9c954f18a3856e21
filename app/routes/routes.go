package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogshell/app/controllers"
	"blogshell/app/middleware"
	"blogshell/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the HTTP command endpoint and returns a router.
func SetupRoutes(blogService *services.BlogService) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
			return
		}
		http.NotFound(w, r)
	})

	blogController := controllers.NewBlogController(blogService)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/commands", blogController.Execute).Methods("POST")
	api.HandleFunc("/blogs", blogController.Index).Methods("GET")
	api.HandleFunc("/blogs/{name}", blogController.Show).Methods("GET")
	api.HandleFunc("/blogs/{name}/find", blogController.Find).Methods("GET")

	return router
}
