package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogshell/app/commands"
	"blogshell/app/models"
	"blogshell/app/repositories/mock"
	"blogshell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: &commands.MalformedCommandError{Line: "x", Reason: "unknown command x"}, status: http.StatusBadRequest},
		{err: fmt.Errorf("invalid post: %w", models.ErrInvalid), status: http.StatusBadRequest},
		{err: fmt.Errorf("comment: %w", models.ErrNotFound), status: http.StatusNotFound},
		{err: models.ErrAuthorMismatch, status: http.StatusForbidden},
		{err: models.ErrDuplicatePermalink, status: http.StatusConflict},
		{err: errors.New("disk full"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestShowStorageFailure(t *testing.T) {
	repo := mock.NewBlogRepository()
	repo.GetErr = errors.New("disk on fire")
	controller := NewBlogController(services.NewBlogService(repo))

	req := httptest.NewRequest("GET", "/api/blogs/tech", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "tech"})
	w := httptest.NewRecorder()
	controller.Show(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk on fire")
}

func TestIndexEmptyStore(t *testing.T) {
	repo := mock.NewBlogRepository()
	controller := NewBlogController(services.NewBlogService(repo))

	req := httptest.NewRequest("GET", "/api/blogs", nil)
	w := httptest.NewRecorder()
	controller.Index(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestExecuteRejectsLinesWithoutCommand(t *testing.T) {
	repo := mock.NewBlogRepository()
	controller := NewBlogController(services.NewBlogService(repo))

	for _, body := range []string{"", "   ", "# note", "  # indented note"} {
		req := httptest.NewRequest("POST", "/api/commands", strings.NewReader(body))
		w := httptest.NewRecorder()
		controller.Execute(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "exactly one command")
	}
	assert.Zero(t, repo.PutCalls)
}
