package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"blogshell/app/commands"
	"blogshell/app/models"
	"blogshell/app/services"
	"blogshell/app/views"

	"github.com/gorilla/mux"
)

// maxCommandSize bounds the body of a command request
const maxCommandSize = 1 << 20

// BlogController handles HTTP requests for blogs and commands
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Index lists the stored blog names
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	names, err := bc.blogService.Blogs()
	if err != nil {
		bc.sendError(w, r, "Failed to list blogs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	bc.sendJSON(w, names)
}

// Show renders a blog as text, or as its JSON document when asked for JSON
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.Blog(mux.Vars(r)["name"])
	if err != nil {
		bc.sendError(w, r, err.Error(), statusFor(err))
		return
	}

	if r.Header.Get("Accept") == "application/json" {
		bc.sendJSON(w, blog)
		return
	}
	bc.sendText(w, views.RenderString(blog))
}

// Find renders the posts and comments of a blog matching the q parameter
func (bc *BlogController) Find(w http.ResponseWriter, r *http.Request) {
	query, ok := r.URL.Query()["q"]
	if !ok || len(query) == 0 {
		bc.sendError(w, r, "Missing search parameter q", http.StatusBadRequest)
		return
	}

	result, err := bc.blogService.Search(mux.Vars(r)["name"], query[0])
	if err != nil {
		bc.sendError(w, r, err.Error(), statusFor(err))
		return
	}

	if r.Header.Get("Accept") == "application/json" {
		bc.sendJSON(w, result)
		return
	}
	bc.sendText(w, views.RenderString(result))
}

// Execute runs the single command line held in the request body
func (bc *BlogController) Execute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandSize))
	if err != nil {
		bc.sendError(w, r, "Failed to read command: "+err.Error(), http.StatusBadRequest)
		return
	}
	line := strings.TrimSpace(string(body))
	if line == "" || strings.HasPrefix(line, "#") || strings.ContainsAny(line, "\r\n") {
		bc.sendError(w, r, "Request body must hold exactly one command", http.StatusBadRequest)
		return
	}

	var out strings.Builder
	runner := commands.NewRunner(bc.blogService, &out, io.Discard)
	if err := runner.Execute(line); err != nil {
		bc.sendError(w, r, err.Error(), statusFor(err))
		return
	}
	bc.sendText(w, out.String())
}

// statusFor maps engine errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrMalformedCommand), errors.Is(err, models.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAuthorMismatch):
		return http.StatusForbidden
	case errors.Is(err, models.ErrDuplicatePermalink):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (bc *BlogController) sendText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, text)
}

func (bc *BlogController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (bc *BlogController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}
